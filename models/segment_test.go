package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegment(t *testing.T) {
	seg, err := NewSegment(0, 0, 60, "/out/video_segment_1.mp4")
	require.NoError(t, err)

	assert.Equal(t, 0, seg.Index)
	assert.Equal(t, 0.0, seg.Start)
	assert.Equal(t, 60.0, seg.End)
	assert.Equal(t, "/out/video_segment_1.mp4", seg.OutputPath)
}

func TestSegment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		wantErr string
	}{
		{
			name:    "valid",
			segment: Segment{Index: 2, Start: 120, End: 180, OutputPath: "/out/v_segment_3.mp4"},
		},
		{
			name:    "negative index",
			segment: Segment{Index: -1, Start: 0, End: 60, OutputPath: "/out/v.mp4"},
			wantErr: "index cannot be negative",
		},
		{
			name:    "empty output path",
			segment: Segment{Index: 0, Start: 0, End: 60, OutputPath: "  "},
			wantErr: "output_path cannot be empty",
		},
		{
			name:    "negative start",
			segment: Segment{Index: 0, Start: -1, End: 60, OutputPath: "/out/v.mp4"},
			wantErr: "start cannot be negative",
		},
		{
			name:    "start equals end",
			segment: Segment{Index: 0, Start: 60, End: 60, OutputPath: "/out/v.mp4"},
			wantErr: "start must be less than end",
		},
		{
			name:    "inverted range",
			segment: Segment{Index: 0, Start: 120, End: 60, OutputPath: "/out/v.mp4"},
			wantErr: "start must be less than end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.segment.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
