package controllers

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"testing"

	"portfolio-api/testutil"
)

func TestCreateContact(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindExec,
			Pattern: regexp.MustCompile("(?i)INSERT INTO `contacts`"),
			Result:  testutil.ScriptedResult{InsertID: 11, Affected: 1},
		},
	})

	code, envelope := perform(t, CreateContact, http.MethodPost, "",
		`{"name": "Maria", "email": "maria@example.com", "message": "Hello there"}`)
	wantEnvelope(t, code, envelope, http.StatusCreated, "success", "Contact created successfully")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateContactRejectsBadEmail(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateContact, http.MethodPost, "",
		`{"name": "Maria", "email": "not-an-email", "message": "Hello"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error", "Invalid email format")
}

func TestCreateContactRejectsUnknownStatus(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateContact, http.MethodPost, "",
		`{"name": "Maria", "email": "maria@example.com", "message": "Hello", "status": "Spam"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Invalid status. Must be: New, Read, Replied, or Archived")
}

func TestGetContactsSearchRequiresKeyword(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetContacts, http.MethodGet, "?action=search", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Keyword parameter is required for search")
}

func TestGetContactsByStatusRequiresStatus(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetContacts, http.MethodGet, "?action=by_status", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error", "Status parameter is required")
}

func TestUpdateContactStatus(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile("(?i)SELECT \\* FROM `contacts` WHERE id = \\?.*LIMIT"),
			Columns: []string{"id", "name", "email", "status"},
			Rows:    [][]driver.Value{{int64(4), "Maria", "maria@example.com", "New"}},
		},
		{
			Kind:    testutil.KindExec,
			Pattern: regexp.MustCompile("(?i)UPDATE `contacts` SET `status`=\\?"),
			Result:  testutil.ScriptedResult{Affected: 1},
		},
	})

	code, envelope := perform(t, UpdateContact, http.MethodPut, "?action=update_status",
		`{"id": 4, "status": "Read"}`)
	wantEnvelope(t, code, envelope, http.StatusOK, "success", "Contact status updated successfully")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateContactStatusRejectsUnknownValue(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, UpdateContact, http.MethodPut, "?action=update_status",
		`{"id": 4, "status": "Spam"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Invalid status. Must be: New, Read, Replied, or Archived")
}

func TestUpdateContactStatusRequiresBothFields(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, UpdateContact, http.MethodPut, "?action=update_status",
		`{"id": 4}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error", "Contact ID and status are required")
}

func TestDeleteContactMissingRow(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile("(?i)SELECT \\* FROM `contacts` WHERE id = \\?.*LIMIT"),
			Columns: []string{"id", "name"},
			Rows:    nil,
		},
	})

	code, envelope := perform(t, DeleteContact, http.MethodDelete, "?id=77", "")
	wantEnvelope(t, code, envelope, http.StatusNotFound, "error", "Contact not found")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}
