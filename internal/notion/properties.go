package notion

import "github.com/DimitrisBelias/Personal-Secretary/internal/domain"

// Property names of the fixed database schemas. The status property is
// lowercase in the hosted schema; the rest are title-cased.
const (
	propName        = "Name"
	propCourseCode  = "Course Code"
	propDueDate     = "Due Date"
	propNotes       = "Notes"
	propDescription = "Description"
	propStatus      = "status"
	propSemester    = "Semester"
	propProfessor   = "Professor"
	propECTS        = "ECTS"
)

// page is the subset of a record payload the adapter reads.
type page struct {
	ID         string                   `json:"id"`
	Archived   bool                     `json:"archived"`
	Properties map[string]propertyValue `json:"properties"`
}

// propertyValue covers every property shape used by the four schemas.
// Exactly one field is populated per property.
type propertyValue struct {
	Title    []richText   `json:"title"`
	RichText []richText   `json:"rich_text"`
	Date     *dateValue   `json:"date"`
	Status   *statusValue `json:"status"`
	Number   *float64     `json:"number"`
}

type richText struct {
	PlainText string `json:"plain_text"`
	Text      *struct {
		Content string `json:"content"`
	} `json:"text"`
}

func (r richText) content() string {
	if r.Text != nil {
		return r.Text.Content
	}
	return r.PlainText
}

type dateValue struct {
	Start string `json:"start"`
}

type statusValue struct {
	Name string `json:"name"`
}

// Extraction degrades gracefully: an absent field yields a sentinel
// rather than an error, marking the record as partially initialized.

func (p page) title(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Title) == 0 {
		return domain.UntitledName
	}
	return prop.Title[0].content()
}

func (p page) text(name string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.RichText) == 0 {
		return ""
	}
	return prop.RichText[0].content()
}

func (p page) date(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Date == nil || prop.Date.Start == "" {
		return domain.NoDate
	}
	return prop.Date.Start
}

func (p page) status(name string) domain.Status {
	prop, ok := p.Properties[name]
	if !ok || prop.Status == nil {
		return domain.StatusNotStarted
	}
	return domain.ParseStatus(prop.Status.Name)
}

func (p page) number(name string) int {
	prop, ok := p.Properties[name]
	if !ok || prop.Number == nil {
		return 0
	}
	return int(*prop.Number)
}

func workItemFromPage(p page, t domain.ItemType) domain.WorkItem {
	item := domain.WorkItem{
		ID:         p.ID,
		Type:       t,
		Name:       p.title(propName),
		CourseCode: p.text(propCourseCode),
		DueDate:    p.date(propDueDate),
		Notes:      p.text(propNotes),
		Status:     p.status(propStatus),
		Archived:   p.Archived,
	}
	if t == domain.ItemLab {
		item.Description = p.text(propDescription)
	}
	return item
}

func courseFromPage(p page) domain.Course {
	return domain.Course{
		ID:         p.ID,
		Name:       p.title(propName),
		CourseCode: p.text(propCourseCode),
		Semester:   p.number(propSemester),
		Professor:  p.text(propProfessor),
		ECTS:       p.number(propECTS),
	}
}

// Builders for write payloads. Shapes follow the property schema of the
// hosted API.

func titleProp(s string) map[string]any {
	return map[string]any{
		"title": []any{
			map[string]any{"text": map[string]any{"content": s}},
		},
	}
}

func richTextProp(s string) map[string]any {
	return map[string]any{
		"rich_text": []any{
			map[string]any{"text": map[string]any{"content": s}},
		},
	}
}

func dateProp(s string) map[string]any {
	return map[string]any{"date": map[string]any{"start": s}}
}

func statusProp(s domain.Status) map[string]any {
	return map[string]any{"status": map[string]any{"name": string(s)}}
}

func numberProp(n int) map[string]any {
	return map[string]any{"number": n}
}
