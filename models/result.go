package models

import (
	"fmt"
	"strings"
)

// Result represents the outcome of one external-tool invocation for a
// segment.
//
// It enforces logical consistency: successful results carry an output path
// and no error, failed results carry an error and no output path.
type Result struct {
	Index      int    `json:"index"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
	Err        error  `json:"-"`
}

// NewResultSuccess creates a successful Result with validation.
func NewResultSuccess(index int, outputPath string) (*Result, error) {
	r := &Result{
		Index:      index,
		OutputPath: outputPath,
		Success:    true,
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid result: %w", err)
	}
	return r, nil
}

// NewResultFailure creates a failed Result. The err parameter must not be
// nil.
func NewResultFailure(index int, err error) (*Result, error) {
	if err == nil {
		return nil, fmt.Errorf("invalid result: error cannot be nil for failed result")
	}
	return &Result{
		Index:   index,
		Success: false,
		Err:     err,
	}, nil
}

// Validate checks that the Result has consistent state.
func (r *Result) Validate() error {
	if r.Success && r.Err != nil {
		return fmt.Errorf("inconsistent state: Success is true but Err is not nil")
	}

	if !r.Success && r.Err == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if r.Success && strings.TrimSpace(r.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty for successful result")
	}

	if !r.Success && strings.TrimSpace(r.OutputPath) != "" {
		return fmt.Errorf("failed result should not have output_path")
	}

	return nil
}
