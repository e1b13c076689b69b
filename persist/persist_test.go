package persist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groupsa/groupsa/model"
	"github.com/groupsa/groupsa/persist"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	p := model.Project{
		Students: []model.Student{
			{
				ID:   1,
				Name: "Ada",
				Characteristics: map[string]model.CharValue{
					"vegetarian": {Kind: model.CharBool, Bool: true},
					"gpa":        {Kind: model.CharNumber, Number: 3.8},
					"notes":      {Kind: model.CharAbsent},
				},
				Liked:    []int{2},
				Disliked: []int{3},
			},
			{ID: 2, Name: "Bo", Characteristics: map[string]model.CharValue{}},
		},
		Groups: []model.Group{
			{
				Name:             "A",
				MaxSize:          4,
				StudentIDs:       []int{1, 2},
				PinnedStudentIDs: []int{1},
				Constraints: []model.Constraint{
					{Characteristic: "vegetarian", Kind: model.All},
					{Characteristic: "x", Kind: model.Max, Value: 2},
				},
			},
		},
		Weights: model.Weights{
			LikesWeight:           1.0,
			DislikesWeight:        2.0,
			CharacteristicWeights: map[string]float64{"gpa": 0.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, persist.Save(&buf, p))

	loaded, err := persist.Load(&buf)
	require.NoError(t, err)

	require.Equal(t, p.Students[0].ID, loaded.Students[0].ID)
	require.Equal(t, p.Students[0].Name, loaded.Students[0].Name)
	require.Equal(t, p.Students[0].Liked, loaded.Students[0].Liked)
	require.Equal(t, p.Students[0].Disliked, loaded.Students[0].Disliked)
	require.Equal(t, p.Students[0].Characteristics["vegetarian"], loaded.Students[0].Characteristics["vegetarian"])
	require.Equal(t, p.Students[0].Characteristics["gpa"], loaded.Students[0].Characteristics["gpa"])
	require.Equal(t, model.CharAbsent, loaded.Students[0].Characteristics["notes"].Kind)

	require.Equal(t, p.Groups[0].Name, loaded.Groups[0].Name)
	require.Equal(t, p.Groups[0].MaxSize, loaded.Groups[0].MaxSize)
	require.Equal(t, p.Groups[0].StudentIDs, loaded.Groups[0].StudentIDs)
	require.Equal(t, p.Groups[0].PinnedStudentIDs, loaded.Groups[0].PinnedStudentIDs)
	require.Equal(t, p.Groups[0].Constraints, loaded.Groups[0].Constraints)

	require.Equal(t, p.Weights, loaded.Weights)
}

func TestSaveThenSaveAgainIsStable(t *testing.T) {
	p := model.Project{
		Students: []model.Student{{ID: 1, Characteristics: map[string]model.CharValue{}}},
		Groups:   []model.Group{{Name: "A", MaxSize: 1, StudentIDs: []int{1}}},
		Weights:  model.DefaultWeights(),
	}

	var buf1 bytes.Buffer
	require.NoError(t, persist.Save(&buf1, p))

	loaded, err := persist.Load(strings.NewReader(buf1.String()))
	require.NoError(t, err)

	var buf2 bytes.Buffer
	require.NoError(t, persist.Save(&buf2, loaded))

	require.Equal(t, buf1.String(), buf2.String())
}

func TestLoadRejectsUnknownConstraintType(t *testing.T) {
	doc := `{
		"students": [{"id":1,"name":"A","characteristics":{},"liked":[],"disliked":[]}],
		"groups": [{"name":"A","max_size":1,"constraints":[{"characteristic":"x","constraint_type":"bogus","value":1}],"student_ids":[1],"pinned_student_ids":[]}],
		"weights": {"likes_weight":1,"dislikes_weight":2,"characteristic_weights":{}}
	}`
	_, err := persist.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, persist.ErrMalformedDocument)
}

func TestLoadRejectsMalformedCharacteristicValue(t *testing.T) {
	doc := `{
		"students": [{"id":1,"name":"A","characteristics":{"x":["not","a","scalar"]},"liked":[],"disliked":[]}],
		"groups": [],
		"weights": {"likes_weight":1,"dislikes_weight":2,"characteristic_weights":{}}
	}`
	_, err := persist.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, persist.ErrMalformedDocument)
}
