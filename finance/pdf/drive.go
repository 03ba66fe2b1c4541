package pdf

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/faseops/membership/scheduled-tasks/secretmanager"
)

const (
	pdfMimeType    string = "application/pdf"
	folderMimeType string = "application/vnd.google-apps.folder"
)

type PlaceholderChange struct {
	Placeholder string
	TextReplace string
}

type googleDriveService struct {
	sharedDriveID string
	driveService  *drive.Service
	docsService   *docs.Service
}

// NewGoogleDriveService builds a DriveService using the service account
// credentials stored on Secret Manager.
func NewGoogleDriveService(ctx context.Context, sharedDriveID string) (DriveService, error) {
	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretGoogleDrive)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := google.JWTConfigFromJSON(data, drive.DriveFileScope, drive.DriveScope)
	if err != nil {
		return nil, err
	}

	clientOpt := option.WithHTTPClient(serviceConfig.Client(ctx))

	driveService, err := drive.NewService(ctx, clientOpt)
	if err != nil {
		return nil, err
	}

	docsService, err := docs.NewService(ctx, clientOpt)
	if err != nil {
		return nil, err
	}

	return &googleDriveService{
		sharedDriveID: sharedDriveID,
		driveService:  driveService,
		docsService:   docsService,
	}, nil
}

// CreateFolder returns the ID of the folder with the given name under the
// parent, creating it when missing.
func (s *googleDriveService) CreateFolder(parentFolderID string, folderName string) (string, error) {
	existFolderID, err := s.findByName(parentFolderID, folderName)
	if err != nil {
		return "", err
	}

	if len(existFolderID) > 0 {
		return existFolderID, nil
	}

	folder, err := s.driveService.Files.Create(&drive.File{
		Name:        folderName,
		MimeType:    folderMimeType,
		Parents:     []string{parentFolderID},
		TeamDriveId: s.sharedDriveID,
	}).SupportsAllDrives(true).Do()
	if err != nil {
		return "", err
	}

	return folder.Id, nil
}

func (s *googleDriveService) CopyFile(srcDocID string, destFolderID string, destFileName string) (string, error) {
	file, err := s.driveService.Files.Copy(srcDocID, &drive.File{
		Parents:     []string{destFolderID},
		TeamDriveId: s.sharedDriveID,
		Name:        destFileName,
	}).SupportsAllDrives(true).Do()
	if err != nil {
		return "", err
	}

	return file.Id, nil
}

// ReplaceText substitutes every {{placeholder}} occurrence in the document.
func (s *googleDriveService) ReplaceText(docID string, changes []PlaceholderChange) error {
	var requests []*docs.Request

	for _, change := range changes {
		requests = append(requests, &docs.Request{
			ReplaceAllText: &docs.ReplaceAllTextRequest{
				ContainsText: &docs.SubstringMatchCriteria{
					MatchCase: false,
					Text:      fmt.Sprintf("{{%s}}", change.Placeholder),
				},
				ReplaceText: change.TextReplace,
			},
		})
	}

	batchUpdateRequest := &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}

	_, err := s.docsService.Documents.BatchUpdate(docID, batchUpdateRequest).Do()

	return err
}

func (s *googleDriveService) ExportFileAsPDF(docID string) ([]byte, error) {
	pdfFile, err := s.driveService.Files.Export(docID, pdfMimeType).Download()
	if err != nil {
		return nil, err
	}

	defer pdfFile.Body.Close()

	return io.ReadAll(pdfFile.Body)
}

func (s *googleDriveService) findByName(folderID string, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents", name, folderID)

	fileList, err := s.driveService.Files.List().Q(q).Corpora("drive").SupportsAllDrives(true).IncludeItemsFromAllDrives(true).DriveId(s.sharedDriveID).Do()
	if err != nil {
		return "", err
	}

	var foundID string

	for _, file := range fileList.Files {
		if file.Name == name && !file.Trashed {
			foundID = file.Id
			break
		}
	}

	return foundID, nil
}
