package bot

import "time"

// dateLayout is the only accepted calendar date form. Anything else
// re-prompts the date state without touching the draft.
const dateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
