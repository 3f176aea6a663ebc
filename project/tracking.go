package project

import (
	"os/user"
	"time"

	"github.com/seclens/israkit/opt"
	"github.com/seclens/israkit/validate"
)

// MetaTracking is one row of the project's tracking history. New rows default
// to the current OS user and today's date; the iteration is stamped by the
// aggregate when the row is added.
type MetaTracking struct {
	iteration       *int
	securityOfficer string
	date            string
	comment         string
}

// MetaTrackingProps is the plain snapshot of a MetaTracking row.
type MetaTrackingProps struct {
	TrackingIteration       *int   `json:"trackingIteration"`
	TrackingSecurityOfficer string `json:"trackingSecurityOfficer"`
	TrackingDate            string `json:"trackingDate"`
	TrackingComment         string `json:"trackingComment"`
}

// NewMetaTracking returns a tracking row prefilled with the current OS user
// and today's date.
func NewMetaTracking() *MetaTracking {
	officer := ""
	if u, err := user.Current(); err == nil {
		officer = u.Username
	}
	return &MetaTracking{
		securityOfficer: officer,
		date:            time.Now().Format("2006-01-02"),
	}
}

// SetIteration sets the tracking iteration: nil or an integer >= 1.
func (m *MetaTracking) SetIteration(v *int) error {
	if v != nil && !validate.PositiveInt(*v) {
		return &validate.ValidationError{Field: "trackingIteration", Message: "invalid tracking iteration"}
	}
	m.iteration = v
	return nil
}

// SetSecurityOfficer sets the responsible officer name.
func (m *MetaTracking) SetSecurityOfficer(v string) error {
	m.securityOfficer = v
	return nil
}

// SetDate sets the tracking date: empty or YYYY-MM-DD.
func (m *MetaTracking) SetDate(v string) error {
	if !validate.Date(v) {
		return &validate.ValidationError{Field: "trackingDate", Message: "invalid date string"}
	}
	m.date = v
	return nil
}

// SetComment sets the free-form tracking comment.
func (m *MetaTracking) SetComment(v string) error {
	m.comment = v
	return nil
}

// Properties returns a snapshot of the row.
func (m *MetaTracking) Properties() MetaTrackingProps {
	return MetaTrackingProps{
		TrackingIteration:       opt.CopyInt(m.iteration),
		TrackingSecurityOfficer: m.securityOfficer,
		TrackingDate:            m.date,
		TrackingComment:         m.comment,
	}
}
