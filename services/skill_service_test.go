package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"portfolio-api/testutil"
)

func TestSkillByCategoryAggregates(t *testing.T) {
	steps := []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile(`(?is)SELECT\s+category,\s+COUNT\(\*\) AS skill_count.*GROUP_CONCAT\(skill_name ORDER BY proficiency_level DESC SEPARATOR ', '\) AS skills_list.*GROUP BY category.*ORDER BY avg_experience DESC, skill_count DESC`),
			Args:    []driver.Value{},
			Columns: []string{"category", "skill_count", "avg_experience", "max_experience", "min_experience", "skills_list"},
			Rows: [][]driver.Value{
				{"Backend", int64(3), float64(4.5), float64(8), float64(2), "Go, PHP, MySQL"},
				{"Frontend", int64(1), float64(2), float64(2), float64(2), "Vue"},
			},
		},
	}

	db, state, cleanup := testutil.NewScriptedGormDB(t, steps)
	defer cleanup()

	rows, err := NewSkillService(db).ByCategory()
	if err != nil {
		t.Fatalf("ByCategory returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rows))
	}

	if rows[0].Category != "Backend" || rows[0].SkillCount != 3 {
		t.Errorf("unexpected first category: %+v", rows[0])
	}
	if rows[0].AvgExperience == nil || *rows[0].AvgExperience != 4.5 {
		t.Errorf("unexpected avg_experience: %v", rows[0].AvgExperience)
	}
	if rows[0].SkillsList != "Go, PHP, MySQL" {
		t.Errorf("unexpected skills_list: %q", rows[0].SkillsList)
	}

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestSkillByProficiencyPassesLevel(t *testing.T) {
	steps := []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile(`(?is)SELECT \* FROM skills\s+WHERE proficiency_level = \?\s+ORDER BY years_of_experience DESC, skill_name ASC`),
			Args:    []driver.Value{"Expert"},
			Columns: []string{"id", "skill_name", "proficiency_level"},
			Rows: [][]driver.Value{
				{int64(2), "Go", "Expert"},
			},
		},
	}

	db, state, cleanup := testutil.NewScriptedGormDB(t, steps)
	defer cleanup()

	skills, err := NewSkillService(db).ByProficiency("Expert")
	if err != nil {
		t.Fatalf("ByProficiency returned error: %v", err)
	}
	if len(skills) != 1 || skills[0].SkillName != "Go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestSkillStatisticsScansLevelCounts(t *testing.T) {
	steps := []*testutil.QueryStep{
		{
			Kind:    testutil.KindQuery,
			Pattern: regexp.MustCompile(`(?is)SELECT\s+COUNT\(\*\) AS total_skills,\s+COUNT\(DISTINCT category\) AS total_categories.*expert_count.*beginner_count.*FROM skills`),
			Args:    []driver.Value{},
			Columns: []string{
				"total_skills", "total_categories", "avg_years_experience", "max_years_experience",
				"expert_count", "advanced_count", "intermediate_count", "beginner_count",
			},
			Rows: [][]driver.Value{
				{int64(4), int64(2), float64(3.875), float64(8), int64(1), int64(2), int64(1), int64(0)},
			},
		},
	}

	db, state, cleanup := testutil.NewScriptedGormDB(t, steps)
	defer cleanup()

	stats, err := NewSkillService(db).Statistics()
	if err != nil {
		t.Fatalf("Statistics returned error: %v", err)
	}

	if stats.TotalSkills != 4 || stats.TotalCategories != 2 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.ExpertCount != 1 || stats.AdvancedCount != 2 || stats.IntermediateCount != 1 || stats.BeginnerCount != 0 {
		t.Errorf("unexpected level counts: %+v", stats)
	}
	if stats.AvgYearsExperience == nil || *stats.AvgYearsExperience != 3.875 {
		t.Errorf("unexpected avg_years_experience: %v", stats.AvgYearsExperience)
	}

	if err := state.VerifyComplete(); err != nil {
		t.Fatal(err)
	}
}
