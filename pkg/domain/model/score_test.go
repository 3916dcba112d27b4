package model_test

import (
	"testing"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestRoundScore(t *testing.T) {
	t.Run("Half rounds to even", func(t *testing.T) {
		gt.Equal(t, 10, model.RoundScore(9.5))
		gt.Equal(t, 8, model.RoundScore(8.5))
		gt.Equal(t, 8, model.RoundScore(7.5))
		gt.Equal(t, 6, model.RoundScore(6.5))
	})

	t.Run("Non-half values round to nearest", func(t *testing.T) {
		gt.Equal(t, 7, model.RoundScore(7.4))
		gt.Equal(t, 8, model.RoundScore(7.6))
		gt.Equal(t, 3, model.RoundScore(3.1))
	})

	t.Run("Clamps to valid range", func(t *testing.T) {
		gt.Equal(t, 1, model.RoundScore(-5))
		gt.Equal(t, 1, model.RoundScore(0.2))
		gt.Equal(t, 10, model.RoundScore(12.7))
	})
}

func TestClampScore(t *testing.T) {
	gt.Equal(t, 1, model.ClampScore(-3))
	gt.Equal(t, 1, model.ClampScore(0))
	gt.Equal(t, 5, model.ClampScore(5))
	gt.Equal(t, 10, model.ClampScore(10))
	gt.Equal(t, 10, model.ClampScore(14))
}
