package project

import "github.com/seclens/israkit/validate"

// Context holds the scope and context of an ISRA project: description,
// reference link, attachment and the security objectives and assumptions.
type Context struct {
	description               string
	url                       string
	descriptionAttachment     string
	securityProjectObjectives string
	securityOfficerObjectives string
	securityAssumptions       string
}

// ContextProps is the plain snapshot of a project Context.
type ContextProps struct {
	ProjectDescription           string `json:"projectDescription"`
	ProjectURL                   string `json:"projectURL"`
	ProjectDescriptionAttachment string `json:"projectDescriptionAttachment"`
	SecurityProjectObjectives    string `json:"securityProjectObjectives"`
	SecurityOfficerObjectives    string `json:"securityOfficerObjectives"`
	SecurityAssumptions          string `json:"securityAssumptions"`
}

// NewContext returns an empty project context.
func NewContext() *Context {
	return &Context{}
}

// SetDescription sets the rich-text project description.
func (c *Context) SetDescription(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "projectDescription", Message: "invalid html string"}
	}
	c.description = v
	return nil
}

// SetURL sets the project hyperlink.
func (c *Context) SetURL(v string) error {
	if !validate.URL(v) {
		return &validate.ValidationError{Field: "projectURL", Message: "invalid url string"}
	}
	c.url = v
	return nil
}

// SetDescriptionAttachment sets the base64 descriptive document.
func (c *Context) SetDescriptionAttachment(v string) error {
	if !validate.Attachment(v) {
		return &validate.ValidationError{Field: "projectDescriptionAttachment", Message: "invalid base64 string"}
	}
	c.descriptionAttachment = v
	return nil
}

// SetSecurityProjectObjectives sets the project manager's objectives.
func (c *Context) SetSecurityProjectObjectives(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "securityProjectObjectives", Message: "invalid html string"}
	}
	c.securityProjectObjectives = v
	return nil
}

// SetSecurityOfficerObjectives sets the security officer's objectives.
func (c *Context) SetSecurityOfficerObjectives(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "securityOfficerObjectives", Message: "invalid html string"}
	}
	c.securityOfficerObjectives = v
	return nil
}

// SetSecurityAssumptions sets the assumptions made on the project.
func (c *Context) SetSecurityAssumptions(v string) error {
	if !validate.HTML(v) {
		return &validate.ValidationError{Field: "securityAssumptions", Message: "invalid html string"}
	}
	c.securityAssumptions = v
	return nil
}

// Properties returns a snapshot of the context.
func (c *Context) Properties() ContextProps {
	return ContextProps{
		ProjectDescription:           c.description,
		ProjectURL:                   c.url,
		ProjectDescriptionAttachment: c.descriptionAttachment,
		SecurityProjectObjectives:    c.securityProjectObjectives,
		SecurityOfficerObjectives:    c.securityOfficerObjectives,
		SecurityAssumptions:          c.securityAssumptions,
	}
}
