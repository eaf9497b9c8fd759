package model

// PhotoRecord represents a single photo item in the photos DynamoDB table.
// The table uses a single-table layout: PK is "PHOTO#{photoId}" and SK is the
// literal "METADATA".
type PhotoRecord struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	PhotoID      string `dynamodbav:"photoId"`
	S3Key        string `dynamodbav:"s3Key"`
	UploaderName string `dynamodbav:"uploaderName"`
	Comment      string `dynamodbav:"comment"`
	UploadedAt   string `dynamodbav:"uploadedAt"`
	UploadedAtMs int64  `dynamodbav:"uploadedAtMs"`
	TTL          int64  `dynamodbav:"ttl"`
}

// Key values for the single-table layout.
const (
	PhotoKeyPrefix  = "PHOTO#"
	MetadataSortKey = "METADATA"
	ConfigPK        = "CONFIG"
	ChecklistSK     = "UPLOAD_CHECKLIST"
)

// PhotoPK builds the partition key for a photo id.
func PhotoPK(photoID string) string {
	return PhotoKeyPrefix + photoID
}
