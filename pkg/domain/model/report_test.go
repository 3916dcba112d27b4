package model_test

import (
	"encoding/json"
	"testing"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestTypeCounts(t *testing.T) {
	t.Run("Counts per type", func(t *testing.T) {
		counts := model.NewTypeCounts()
		counts.Add(types.IssueTypeBug)
		counts.Add(types.IssueTypeStyle)
		counts.Add(types.IssueTypeBug)

		gt.Equal(t, 2, counts.Count(types.IssueTypeBug))
		gt.Equal(t, 1, counts.Count(types.IssueTypeStyle))
		gt.Equal(t, 0, counts.Count(types.IssueTypeSecurity))
		gt.Equal(t, 2, counts.Len())
	})

	t.Run("Preserves first-seen order", func(t *testing.T) {
		counts := model.NewTypeCounts()
		counts.Add(types.IssueTypeStyle)
		counts.Add(types.IssueTypeBug)
		counts.Add(types.IssueTypeStyle)
		counts.Add(types.IssueTypeSecurity)

		gt.Equal(t, []types.IssueType{
			types.IssueTypeStyle,
			types.IssueTypeBug,
			types.IssueTypeSecurity,
		}, counts.Types())
	})

	t.Run("Marshals keys in insertion order", func(t *testing.T) {
		counts := model.NewTypeCounts()
		counts.Add(types.IssueTypeDocumentation)
		counts.Add(types.IssueTypeBug)
		counts.Add(types.IssueTypeBug)

		data, err := json.Marshal(counts)
		gt.NoError(t, err)
		gt.Equal(t, `{"documentation":1,"bug":2}`, string(data))
	})

	t.Run("Empty marshals to empty object", func(t *testing.T) {
		data, err := json.Marshal(model.NewTypeCounts())
		gt.NoError(t, err)
		gt.Equal(t, `{}`, string(data))
	})

	t.Run("Unmarshal restores key order", func(t *testing.T) {
		var counts model.TypeCounts
		gt.NoError(t, json.Unmarshal([]byte(`{"style":3,"bug":1,"security":2}`), &counts))

		gt.Equal(t, []types.IssueType{
			types.IssueTypeStyle,
			types.IssueTypeBug,
			types.IssueTypeSecurity,
		}, counts.Types())
		gt.Equal(t, 3, counts.Count(types.IssueTypeStyle))
		gt.Equal(t, 1, counts.Count(types.IssueTypeBug))
		gt.Equal(t, 2, counts.Count(types.IssueTypeSecurity))
	})

	t.Run("Unmarshal rejects non-object", func(t *testing.T) {
		var counts model.TypeCounts
		gt.Error(t, json.Unmarshal([]byte(`[1,2]`), &counts))
	})
}
