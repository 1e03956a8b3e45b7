package algo

import (
	"errors"
	"math"
	"testing"

	"campus-nav/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphSample(t *testing.T) {
	locations, links := sampleCampus()

	g, err := BuildGraph(locations, links)
	require.NoError(t, err)

	assert.Len(t, g.Nodes, 8)
	assert.Len(t, g.NodeList, 8)
	assert.Equal(t, 10, g.EdgeCount())
	assert.Equal(t, 30.0, g.Nodes["Canteen"].X)

	// undirected: weight is the same from both ends
	w1, ok := g.Weight("Library", "Block A")
	require.True(t, ok)
	w2, ok := g.Weight("Block A", "Library")
	require.True(t, ok)
	assert.Equal(t, 12.0, w1)
	assert.Equal(t, w1, w2)

	// one edge object shared by both adjacency lists
	assert.Len(t, g.GetNeighbors("Library"), 2)
	assert.Same(t, g.GetNeighbors("Library")[0], g.GetNeighbors("Block A")[0])
}

func TestBuildGraphDuplicateLinkLastWriteWins(t *testing.T) {
	locations := []model.Location{{Name: "A"}, {Name: "B", X: 1}}
	links := []model.Link{
		{From: "A", To: "B", Distance: 5},
		{From: "B", To: "A", Distance: 3},
	}

	g, err := BuildGraph(locations, links)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.GetNeighbors("A"), 1)
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 3.0, w)
}

func TestBuildGraphIntegrityErrors(t *testing.T) {
	base := []model.Location{{Name: "A"}, {Name: "B", X: 1}}

	tests := []struct {
		name      string
		locations []model.Location
		links     []model.Link
	}{
		{
			name:      "link to unknown location",
			locations: base,
			links:     []model.Link{{From: "A", To: "Ghost", Distance: 2}},
		},
		{
			name:      "link from unknown location",
			locations: base,
			links:     []model.Link{{From: "Ghost", To: "B", Distance: 2}},
		},
		{
			name:      "self loop",
			locations: base,
			links:     []model.Link{{From: "A", To: "A", Distance: 2}},
		},
		{
			name:      "zero distance",
			locations: base,
			links:     []model.Link{{From: "A", To: "B", Distance: 0}},
		},
		{
			name:      "NaN distance",
			locations: base,
			links:     []model.Link{{From: "A", To: "B", Distance: math.NaN()}},
		},
		{
			name:      "duplicate location name",
			locations: append([]model.Location{{Name: "A", X: 9}}, base...),
		},
		{
			name:      "empty location name",
			locations: []model.Location{{Name: ""}},
		},
		{
			name:      "infinite coordinate",
			locations: []model.Location{{Name: "A", X: math.Inf(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.locations, tt.links)
			require.Error(t, err)
			assert.Nil(t, g)

			var integrity *DataIntegrityError
			assert.True(t, errors.As(err, &integrity), "got %T", err)
		})
	}
}

func TestDataIntegrityErrorNamesLink(t *testing.T) {
	_, err := BuildGraph([]model.Location{{Name: "A"}}, []model.Link{{From: "A", To: "Ghost", Distance: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestPathWeight(t *testing.T) {
	g, err := BuildGraph(sampleCampus())
	require.NoError(t, err)

	w, ok := g.PathWeight([]string{"Library", "Block A", "Lab 1", "Canteen"})
	require.True(t, ok)
	assert.Equal(t, 32.0, w)

	_, ok = g.PathWeight([]string{"Library", "Hostel"})
	assert.False(t, ok)

	w, ok = g.PathWeight([]string{"Library"})
	assert.True(t, ok)
	assert.Zero(t, w)
}
