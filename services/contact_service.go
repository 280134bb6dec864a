package services

import (
	"time"

	"portfolio-api/models"

	"gorm.io/gorm"
)

// ContactService holds the read-only filter and aggregate queries layered on
// the contacts table.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// ByStatus lists contact messages with one status, newest first.
func (s *ContactService) ByStatus(status string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.Raw(`
		SELECT * FROM contacts
		WHERE status = ?
		ORDER BY created_at DESC`, status).Scan(&contacts).Error
	return contacts, err
}

// RecentContactRow is a contact message annotated for display: a
// human-formatted date and the whole-day age of the message.
type RecentContactRow struct {
	models.Contact `gorm:"embedded"`
	FormattedDate  string `gorm:"-" json:"formatted_date"`
	DaysAgo        int    `gorm:"-" json:"days_ago"`
}

// Recent lists messages created within the trailing window of the given
// number of days, newest first.
func (s *ContactService) Recent(days int) ([]RecentContactRow, error) {
	var rows []RecentContactRow
	err := s.db.Raw(`
		SELECT * FROM contacts
		WHERE created_at >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
		ORDER BY created_at DESC`, days).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range rows {
		rows[i].FormattedDate = FormatContactTimestamp(rows[i].CreatedAt)
		rows[i].DaysAgo = DaysSince(rows[i].CreatedAt, now)
	}
	return rows, nil
}

// ContactStatistics is the message summary: per-status counts plus rolling
// 7-day and 30-day totals.
type ContactStatistics struct {
	TotalContacts  int `gorm:"column:total_contacts" json:"total_contacts"`
	NewCount       int `gorm:"column:new_count" json:"new_count"`
	ReadCount      int `gorm:"column:read_count" json:"read_count"`
	RepliedCount   int `gorm:"column:replied_count" json:"replied_count"`
	ArchivedCount  int `gorm:"column:archived_count" json:"archived_count"`
	LastWeekCount  int `gorm:"column:last_week_count" json:"last_week_count"`
	LastMonthCount int `gorm:"column:last_month_count" json:"last_month_count"`
}

// Statistics returns counts by status and rolling window totals.
func (s *ContactService) Statistics() (*ContactStatistics, error) {
	var stats ContactStatistics
	err := s.db.Raw(`
		SELECT
			COUNT(*) AS total_contacts,
			COALESCE(SUM(CASE WHEN status = 'New' THEN 1 ELSE 0 END), 0) AS new_count,
			COALESCE(SUM(CASE WHEN status = 'Read' THEN 1 ELSE 0 END), 0) AS read_count,
			COALESCE(SUM(CASE WHEN status = 'Replied' THEN 1 ELSE 0 END), 0) AS replied_count,
			COALESCE(SUM(CASE WHEN status = 'Archived' THEN 1 ELSE 0 END), 0) AS archived_count,
			(SELECT COUNT(*) FROM contacts WHERE created_at >= DATE_SUB(CURDATE(), INTERVAL 7 DAY)) AS last_week_count,
			(SELECT COUNT(*) FROM contacts WHERE created_at >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)) AS last_month_count
		FROM contacts`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ContactDateRow is one calendar day of messages with the sender names.
type ContactDateRow struct {
	ContactDate  time.Time `gorm:"column:contact_date" json:"contact_date"`
	CountPerDay  int       `gorm:"column:count_per_day" json:"count_per_day"`
	ContactsList string    `gorm:"column:contacts_list" json:"contacts_list"`
}

// ByDate buckets messages per calendar day, newest day first.
func (s *ContactService) ByDate() ([]ContactDateRow, error) {
	var rows []ContactDateRow
	err := s.db.Raw(`
		SELECT
			DATE(created_at) AS contact_date,
			COUNT(*) AS count_per_day,
			GROUP_CONCAT(name SEPARATOR ', ') AS contacts_list
		FROM contacts
		GROUP BY DATE(created_at)
		ORDER BY contact_date DESC`).Scan(&rows).Error
	return rows, err
}

// Search matches the keyword as a substring of name, email or subject.
func (s *ContactService) Search(keyword string) ([]models.Contact, error) {
	term := "%" + keyword + "%"
	var contacts []models.Contact
	err := s.db.Raw(`
		SELECT * FROM contacts
		WHERE name LIKE ? OR email LIKE ? OR subject LIKE ?
		ORDER BY created_at DESC`, term, term, term).Scan(&contacts).Error
	return contacts, err
}
