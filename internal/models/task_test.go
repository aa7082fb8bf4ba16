package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskPatch_Apply(t *testing.T) {
	tests := []struct {
		patch TaskPatch
		want  Task
		name  string
	}{
		{
			name:  "empty patch keeps task",
			patch: TaskPatch{},
			want:  Task{Title: "Buy milk", Description: "2 liters"},
		},
		{
			name:  "completed only",
			patch: TaskPatch{Completed: boolPtr(true)},
			want:  Task{Title: "Buy milk", Description: "2 liters", Completed: true},
		},
		{
			name:  "clear description",
			patch: TaskPatch{Description: strPtr("")},
			want:  Task{Title: "Buy milk"},
		},
		{
			name:  "all fields",
			patch: TaskPatch{Title: strPtr("Buy bread"), Description: strPtr("rye"), Completed: boolPtr(true)},
			want:  Task{Title: "Buy bread", Description: "rye", Completed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Title: "Buy milk", Description: "2 liters"}
			tt.patch.Apply(&task)
			assert.Equal(t, tt.want, task)
		})
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Completed: boolPtr(false)}.IsEmpty())
}
