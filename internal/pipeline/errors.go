package pipeline

import "fmt"

// Stage names the pipeline step a record failed in.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageDecode Stage = "decode"
	StageResize Stage = "resize"
	StageReduce Stage = "reduce"
	StageStore  Stage = "store"
	StageAudit  Stage = "audit"
)

// RecordError is the terminal failure of one notification record. Every
// stage is terminal for its record; the batch policy decides what happens
// to the records after it.
type RecordError struct {
	Stage Stage
	Key   string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func failed(stage Stage, key string, err error) *RecordError {
	return &RecordError{Stage: stage, Key: key, Err: err}
}
