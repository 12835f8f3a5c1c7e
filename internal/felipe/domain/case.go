package domain

import "time"

// Case is a legal matter record owned by exactly one user. Every read and
// write is scoped by UserID; a case is never visible outside its owner.
type Case struct {
	ID            string     `json:"id"`
	CaseNumber    string     `json:"case_number"`
	Title         string     `json:"title"`
	Defendant     string     `json:"defendant"`
	CrimeType     string     `json:"crime_type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Progress      int        `json:"progress"`
	Description   string     `json:"description"`
	Investigator  string     `json:"investigator"`
	EvidenceCount int        `json:"evidence_count"`
	WitnessCount  int        `json:"witness_count"`
	NextHearing   *time.Time `json:"next_hearing"`
	UserID        string     `json:"user_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CaseUpdate is a partial update payload. Nil fields are left untouched.
type CaseUpdate struct {
	Title         *string    `json:"title"`
	Defendant     *string    `json:"defendant"`
	CrimeType     *string    `json:"crime_type"`
	Status        *string    `json:"status"`
	Priority      *string    `json:"priority"`
	Progress      *int       `json:"progress"`
	Description   *string    `json:"description"`
	Investigator  *string    `json:"investigator"`
	EvidenceCount *int       `json:"evidence_count"`
	WitnessCount  *int       `json:"witness_count"`
	NextHearing   *time.Time `json:"next_hearing"`
}

// Apply copies the non-nil fields of u onto c.
func (u CaseUpdate) Apply(c *Case) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Defendant != nil {
		c.Defendant = *u.Defendant
	}
	if u.CrimeType != nil {
		c.CrimeType = *u.CrimeType
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Priority != nil {
		c.Priority = *u.Priority
	}
	if u.Progress != nil {
		c.Progress = *u.Progress
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Investigator != nil {
		c.Investigator = *u.Investigator
	}
	if u.EvidenceCount != nil {
		c.EvidenceCount = *u.EvidenceCount
	}
	if u.WitnessCount != nil {
		c.WitnessCount = *u.WitnessCount
	}
	if u.NextHearing != nil {
		c.NextHearing = u.NextHearing
	}
}
