package resource

import (
	"testing"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestProfileFor(t *testing.T) {
	for _, kind := range model.ParentKinds {
		profile, ok := ProfileFor(kind)
		assert.True(t, ok, kind.String())
		assert.Equal(t, kind, profile.Kind)
		assert.Equal(t, model.SourceFieldResource, profile.ExplicitField)
		assert.NotEmpty(t, profile.AutoDetectedFields)
	}

	_, ok := ProfileFor(model.ParentKind("grant"))
	assert.False(t, ok)
}

func TestIsAutoDetected(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		auto   []string
		want   bool
	}{
		{name: "explicit only", fields: []string{"resource"}, auto: []string{"title"}, want: false},
		{name: "free text only", fields: []string{"title"}, auto: []string{"title"}, want: true},
		{name: "mixed", fields: []string{"resource", "title"}, auto: []string{"title", "ttaProvided"}, want: true},
		{name: "no tags", fields: nil, auto: []string{"title"}, want: false},
		{name: "no auto fields", fields: []string{"title"}, auto: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAutoDetected(tt.fields, tt.auto))
		})
	}
}
