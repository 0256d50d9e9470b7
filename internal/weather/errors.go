package weather

import "fmt"

// Stage names a step of the weather pipeline.
type Stage string

const (
	StageLocation Stage = "location"
	StageWeather  Stage = "weather"
)

// PipelineError wraps the error of the first pipeline stage that failed.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("weather pipeline: %s stage: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
