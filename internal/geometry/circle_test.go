package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/rvegen/internal/model"
)

func circle(t *testing.T, x, y, r float64) model.Circle {
	t.Helper()
	c, err := model.NewCircle("Inclusion", model.Point2D{X: x, Y: y}, r)
	if err != nil {
		t.Fatalf("NewCircle(%g, %g, %g) error = %v", x, y, r, err)
	}
	return c
}

func TestCirclesIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    model.Circle
		b    model.Circle
		want bool
	}{
		{
			name: "clearly separated",
			a:    circle(t, 0.2, 0.2, 0.1),
			b:    circle(t, 0.8, 0.8, 0.1),
			want: false,
		},
		{
			name: "clearly overlapping",
			a:    circle(t, 0.4, 0.5, 0.15),
			b:    circle(t, 0.5, 0.5, 0.15),
			want: true,
		},
		{
			name: "touching at one point counts as intersection",
			a:    circle(t, 0.3, 0.5, 0.1),
			b:    circle(t, 0.5, 0.5, 0.1),
			want: true,
		},
		{
			name: "just beyond touching",
			a:    circle(t, 0.3, 0.5, 0.1),
			b:    circle(t, 0.5001, 0.5, 0.1),
			want: false,
		},
		{
			name: "one contains the other",
			a:    circle(t, 0.5, 0.5, 0.3),
			b:    circle(t, 0.5, 0.55, 0.05),
			want: true,
		},
		{
			name: "concentric",
			a:    circle(t, 0.5, 0.5, 0.2),
			b:    circle(t, 0.5, 0.5, 0.05),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CirclesIntersect(tt.a, tt.b))
			assert.Equal(t, tt.want, CirclesIntersect(tt.b, tt.a), "test must be symmetric")
		})
	}
}

func TestCircleHitsAny(t *testing.T) {
	placed := []model.Circle{
		circle(t, 0.2, 0.2, 0.1),
		circle(t, 0.8, 0.8, 0.1),
	}

	assert.False(t, CircleHitsAny(circle(t, 0.5, 0.5, 0.1), placed))
	assert.True(t, CircleHitsAny(circle(t, 0.75, 0.75, 0.1), placed))
	assert.False(t, CircleHitsAny(circle(t, 0.5, 0.5, 0.1), nil), "empty placed set never collides")
}
