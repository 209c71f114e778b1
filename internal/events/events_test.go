package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotification = `{
  "Records": [
    {
      "eventVersion": "2.1",
      "eventSource": "aws:s3",
      "awsRegion": "eu-central-1",
      "eventTime": "2024-05-01T10:00:00.000Z",
      "eventName": "ObjectCreated:Put",
      "s3": {
        "bucket": {"name": "src-bucket-image-in"},
        "object": {"key": "photos/cat+picture.jpg", "size": 52100}
      }
    },
    {
      "eventVersion": "2.1",
      "eventSource": "aws:s3",
      "awsRegion": "eu-central-1",
      "eventTime": "2024-05-01T10:00:01.000Z",
      "eventName": "ObjectCreated:Put",
      "s3": {
        "bucket": {"name": "src-bucket-image-in"},
        "object": {"key": "logo.png"}
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	n, err := Parse([]byte(sampleNotification))
	require.NoError(t, err)
	require.Len(t, n.Records, 2)

	first := n.Records[0]
	assert.Equal(t, "aws:s3", first.EventSource)
	assert.Equal(t, "2.1", first.EventVersion)
	assert.Equal(t, "ObjectCreated:Put", first.EventName)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", first.EventTime)
	assert.Equal(t, "eu-central-1", first.AWSRegion)
	assert.Equal(t, "src-bucket-image-in", first.S3.Bucket.Name)
	assert.Equal(t, "photos/cat+picture.jpg", first.S3.Object.Key)
	assert.Equal(t, int64(52100), first.S3.Object.Size)
}

func TestParse_SizeDefaultsToMinusOne(t *testing.T) {
	n, err := Parse([]byte(sampleNotification))
	require.NoError(t, err)

	assert.Equal(t, int64(-1), n.Records[1].S3.Object.Size)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"Records": [`))
	assert.Error(t, err)
}

func TestDecodedKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "plus becomes space", key: "a+b.jpg", want: "a b.jpg"},
		{name: "percent escape", key: "caf%C3%A9.png", want: "café.png"},
		{name: "encoded plus", key: "a%2Bb.jpg", want: "a+b.jpg"},
		{name: "nested prefix", key: "photos/2024/cat+dog.jpg", want: "photos/2024/cat dog.jpg"},
		{name: "plain key untouched", key: "image.webp", want: "image.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{}
			r.S3.Object.Key = tt.key

			got, err := r.DecodedKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodedKey_MalformedEscape(t *testing.T) {
	r := Record{}
	r.S3.Object.Key = "bad%zzkey.jpg"

	_, err := r.DecodedKey()
	assert.Error(t, err)
}
