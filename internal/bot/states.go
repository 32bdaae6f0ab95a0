package bot

// State names one prompt of the conversation machine. Every inbound
// event is dispatched on the session's current state; unrecognized
// input re-displays the same prompt.
type State string

const (
	StateMainMenu State = "main_menu"

	// Add flow for work items. The draft's item type distinguishes the
	// three collections; labs get the extra description step.
	StateAddMenu            State = "add_menu"
	StateAddItemName        State = "add_item_name"
	StateAddItemCourse      State = "add_item_course"
	StateAddItemDate        State = "add_item_date"
	StateAddItemDescription State = "add_item_description"
	StateAddItemNotes       State = "add_item_notes"

	// Add flow for courses.
	StateAddCourseName      State = "add_course_name"
	StateAddCourseCode      State = "add_course_code"
	StateAddCourseSemester  State = "add_course_semester"
	StateAddCourseProfessor State = "add_course_professor"
	StateAddCourseECTS      State = "add_course_ects"

	// List flow: pick a collection, pick an item, act on it.
	StateListMenu      State = "list_menu"
	StateListSelect    State = "list_select"
	StateItemAction    State = "item_action"
	StateEditDate      State = "edit_date"
	StateEditCourse    State = "edit_course"
	StateEditNotes     State = "edit_notes"
	StateConfirmDelete State = "confirm_delete"

	StateUpcomingMenu State = "upcoming_menu"
)

// Callback payloads for the fixed buttons. Record ids and values ride
// behind the cb*Prefix payloads.
const (
	cbMenuAdd      = "menu_add"
	cbMenuList     = "menu_list"
	cbMenuUpcoming = "menu_upcoming"

	cbAddAssignment = "add_assignment"
	cbAddLab        = "add_lab"
	cbAddProject    = "add_project"
	cbAddCourse     = "add_course"

	cbListAssignments = "list_assignments"
	cbListLabs        = "list_labs"
	cbListProjects    = "list_projects"
	cbListCourses     = "list_courses"

	cbBackMain   = "back_main"
	cbBackAdd    = "back_add"
	cbBackList   = "back_list"
	cbBackItems  = "back_items"
	cbBackAction = "back_action"

	cbSkip       = "skip"
	cbDateCustom = "date_custom"

	cbDelete        = "delete"
	cbConfirmDelete = "confirm_delete"
	cbCancelDelete  = "cancel_delete"

	cbEditDate   = "edit_date"
	cbEditCourse = "edit_course"
	cbEditNotes  = "edit_notes"

	cbDatePrefix     = "date_"
	cbCoursePrefix   = "course_"
	cbItemPrefix     = "item_"
	cbStatusPrefix   = "status_"
	cbUpcomingPrefix = "upcoming_"
)
