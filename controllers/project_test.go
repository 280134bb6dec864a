package controllers

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"testing"

	"portfolio-api/testutil"
)

func TestGetProjectsSearchAcceptsKeywordAlias(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile(`(?is)MATCH\(technologies_used, description\) AGAINST\(\? IN NATURAL LANGUAGE MODE\)`),
			Args:    []driver.Value{"React", "React"},
			Columns: []string{"id", "project_title", "relevance"},
			Rows: [][]driver.Value{
				{int64(2), "Dashboard", float64(2.1)},
			},
		},
	})

	code, envelope := perform(t, GetProjects, http.MethodGet, "?action=search&keyword=React", "")
	wantEnvelope(t, code, envelope, http.StatusOK, "success", "Search results retrieved successfully")

	if envelope["count"] != float64(1) {
		t.Errorf("expected count 1, got %v", envelope["count"])
	}

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestGetProjectsSearchRequiresTechnology(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetProjects, http.MethodGet, "?action=search", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Technology parameter is required for search")
}

func TestCreateProjectDefaultsToPlanning(t *testing.T) {
	state := scriptDB(t, []*testutil.QueryStep{
		{
			Kind:    testutil.KindExec,
			Pattern: regexp.MustCompile("(?i)INSERT INTO `projects`"),
			Result:  testutil.ScriptedResult{InsertID: 5, Affected: 1},
		},
	})

	code, envelope := perform(t, CreateProject, http.MethodPost, "",
		`{"project_title": "Portfolio CMS", "description": "A portfolio backend"}`)
	wantEnvelope(t, code, envelope, http.StatusCreated, "success", "Project created successfully")

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateProjectRejectsUnknownStatus(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateProject, http.MethodPost, "",
		`{"project_title": "Portfolio CMS", "description": "A portfolio backend", "status": "Done"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Invalid status. Must be: Planning, In Progress, Completed, or Archived")
}

func TestCreateProjectRejectsBadStartDate(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, CreateProject, http.MethodPost, "",
		`{"project_title": "Portfolio CMS", "description": "A portfolio backend", "start_date": "2024/01/01"}`)
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Invalid start_date format. Use YYYY-MM-DD")
}

func TestGetProjectsByStatusRequiresStatus(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetProjects, http.MethodGet, "?action=by_status", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error", "Status parameter is required")
}

func TestGetProjectsByStatusRejectsUnknownValue(t *testing.T) {
	scriptDB(t, nil)

	code, envelope := perform(t, GetProjects, http.MethodGet, "?action=by_status&status=Done", "")
	wantEnvelope(t, code, envelope, http.StatusBadRequest, "error",
		"Invalid status. Must be: Planning, In Progress, Completed, or Archived")
}
