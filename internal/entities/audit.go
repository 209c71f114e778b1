package entities

// AuditRecord is the append-only trace of one completed transformation.
// ResourceID is a fresh UUID per processed record, never derived from the
// source object, so re-processing the same object never collides.
// Width/height/size/percentage fields stay integers end to end so both the
// DynamoDB and Postgres backends store them as numbers.
type AuditRecord struct {
	ResourceID string `json:"resource_id" dynamodbav:"resource-id"`
	EventTime  string `json:"event_time" dynamodbav:"EventTime"`
	EventType  string `json:"event_type" dynamodbav:"EventType"`

	OriginalBucket    string `json:"original_bucket" dynamodbav:"OriginalBucket"`
	OriginalObjectKey string `json:"original_object_key" dynamodbav:"OriginalObjectKey"`
	// OriginalSize is the byte-size hint carried by the notification, -1 when
	// absent. Untrusted; OriginalFileSize holds the measured size.
	OriginalSize     int64  `json:"original_size" dynamodbav:"OriginalSize"`
	OriginalWidth    int    `json:"original_width" dynamodbav:"OriginalWidth"`
	OriginalHeight   int    `json:"original_height" dynamodbav:"OriginalHeight"`
	OriginalFormat   string `json:"original_format" dynamodbav:"OriginalFormat"`
	OriginalMode     string `json:"original_mode" dynamodbav:"OriginalMode"`
	OriginalFileSize int64  `json:"original_file_size" dynamodbav:"OriginalFileSize"`

	ResizedBucket    string `json:"resized_bucket" dynamodbav:"ResizedBucket"`
	ResizedObjectKey string `json:"resized_object_key" dynamodbav:"ResizedObjectKey"`
	ResizedWidth     int    `json:"resized_width" dynamodbav:"ResizedWidth"`
	ResizedHeight    int    `json:"resized_height" dynamodbav:"ResizedHeight"`
	ResizedFormat    string `json:"resized_format" dynamodbav:"ResizedFormat"`
	ResizedMode      string `json:"resized_mode" dynamodbav:"ResizedMode"`
	ResizedFileSize  int64  `json:"resized_file_size" dynamodbav:"ResizedFileSize"`

	ProcessingTime      string `json:"processing_time" dynamodbav:"ProcessingTime"`
	ReductionPercentage int    `json:"reduction_percentage" dynamodbav:"ReductionPercentage"`
	DimensionReduction  string `json:"dimension_reduction" dynamodbav:"DimensionReduction"`

	EventSource  string `json:"event_source" dynamodbav:"EventSource"`
	AWSRegion    string `json:"aws_region" dynamodbav:"AWSRegion"`
	EventVersion string `json:"event_version" dynamodbav:"EventVersion"`
}
