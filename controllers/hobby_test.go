package controllers

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"testing"

	"portfolio-api/testutil"
)

func TestGetHobbiesSearchRequiresKeyword(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetHobbies, http.MethodGet, "?action=search", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Keyword parameter is required for search")
}

func TestCreateHobbyRequiresName(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateHobby, http.MethodPost, "", `{"description": "Reading"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Missing required field: hobby_name is required")
}

func TestCreateHobbyTrimsWhitespaceOnlyName(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateHobby, http.MethodPost, "", `{"hobby_name": "   "}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Missing required field: hobby_name is required")
}

func TestCreateHobby(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindExec,
			Pattern: regexp.MustCompile("(?i)INSERT INTO `hobbies`"),
			Result:  testutil.ScriptedResult{InsertID: 9, Affected: 1},
		},
	})

	code, envelope := perform(t, CreateHobby, http.MethodPost, "", `{"hobby_name": "Photography"}`)
	wantEnvelope(t, code, envelope, http.StatusCreated, "success", "Hobby created successfully")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteHobbyFailsWhenNothingDeleted(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile("(?i)SELECT \\* FROM `hobbies` WHERE id = \\?.*LIMIT"),
			Columns: []string{"id", "hobby_name"},
			Rows:    [][]driver.Value{{int64(2), "Chess"}},
		},
		{
			Kind:    testutil.KindExec,
			Pattern: regexp.MustCompile("(?i)DELETE FROM `hobbies` WHERE id = \\?"),
			Result:  testutil.ScriptedResult{Affected: 0},
		},
	})

	code, envelope := perform(t, DeleteHobby, http.MethodDelete, "?id=2", "")
	wantEnvelope(t, code, envelope, http.StatusInternalServerError, "error", "Failed to delete hobby")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}
