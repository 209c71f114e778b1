// Package events models the S3-style bucket notification envelope delivered
// to the webhook: the format emitted by S3 event notifications, SNS HTTP
// subscriptions and MinIO bucket-notification webhooks.
package events

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Notification is one invocation's batch of records.
type Notification struct {
	Records []Record `json:"Records" validate:"required,min=1,dive"`
}

// Record describes one newly created source object.
type Record struct {
	EventSource  string `json:"eventSource"`
	EventVersion string `json:"eventVersion"`
	EventName    string `json:"eventName"`
	EventTime    string `json:"eventTime"`
	AWSRegion    string `json:"awsRegion"`
	S3           S3     `json:"s3" validate:"required"`
}

type S3 struct {
	Bucket Bucket `json:"bucket" validate:"required"`
	Object Object `json:"object" validate:"required"`
}

type Bucket struct {
	Name string `json:"name" validate:"required"`
}

type Object struct {
	Key string `json:"key" validate:"required"`
	// Size is an optional, untrusted hint. -1 when the notification omits it.
	Size int64 `json:"size"`
}

// UnmarshalJSON defaults Size to -1 so an absent hint is distinguishable
// from a zero-byte object.
func (o *Object) UnmarshalJSON(data []byte) error {
	type object Object
	tmp := object{Size: -1}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*o = Object(tmp)
	return nil
}

// Parse decodes a notification payload.
func Parse(payload []byte) (Notification, error) {
	var n Notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return Notification{}, fmt.Errorf("parse notification: %w", err)
	}
	return n, nil
}

// DecodedKey returns the object key with URL-style escaping removed: `+`
// becomes a space and %XX sequences are unescaped, matching how S3 encodes
// keys in notifications. The decoded literal key is what every storage call
// must use; a malformed escape is an error, never a silent fallback to the
// raw key.
func (r Record) DecodedKey() (string, error) {
	key, err := url.QueryUnescape(r.S3.Object.Key)
	if err != nil {
		return "", fmt.Errorf("decode object key %q: %w", r.S3.Object.Key, err)
	}
	return key, nil
}
