package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringList_ValueAndScan(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(v.([]byte)))

	var l StringList
	require.NoError(t, l.Scan([]byte(`["x"]`)))
	require.Equal(t, StringList{"x"}, l)

	require.NoError(t, l.Scan("[]"))
	require.NotNil(t, l)
	require.Empty(t, l)

	require.Error(t, l.Scan(42))
	require.Error(t, l.Scan("{not json"))
}

func TestVolunteerTask_Capacity(t *testing.T) {
	task := VolunteerTask{MaxVolunteers: 2, Volunteers: StringList{"a"}}
	require.True(t, task.HasVolunteer("a"))
	require.False(t, task.HasVolunteer("b"))
	require.False(t, task.Full())

	task.Volunteers = append(task.Volunteers, "b")
	require.True(t, task.Full())
}

func TestReferencedUserIDs(t *testing.T) {
	ids := ReferencedUserIDs([]VolunteerTask{
		{CreatedBy: "chief", Volunteers: StringList{"a", "b"}},
		{CreatedBy: "chief", Volunteers: StringList{"b", "c"}},
		{CreatedBy: ""},
	})
	require.Equal(t, []string{"chief", "a", "b", "c"}, ids)
}

func TestPopulate(t *testing.T) {
	users := map[string]User{
		"chief": {ID: "chief", Name: "Chief Ada", Email: "ada@relief.example", Role: "authority"},
	}
	out := Populate([]VolunteerTask{
		{ID: "t1", CreatedBy: "chief", Volunteers: StringList{"ghost"}, MaxVolunteers: 1},
	}, users)

	require.Len(t, out, 1)
	require.Equal(t, UserSummary{ID: "chief", Name: "Chief Ada", Email: "ada@relief.example", Role: "authority"}, out[0].CreatedBy)
	require.Equal(t, []UserSummary{{ID: "ghost"}}, out[0].Volunteers)
	require.Equal(t, 1, out[0].MaxVolunteers)
}
