package submissions

import (
	"fmt"
	"time"
)

// Protocol derives the display identifier YYYYMMDD-NNNNNN from the creation date and id.
func Protocol(createdAt time.Time, id int64) string {
	return fmt.Sprintf("%s-%06d", createdAt.Format("20060102"), id)
}
