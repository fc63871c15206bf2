// Callback payload codec.
//
// The admin console keeps no per-session state on the server: the active
// filter text and page number are serialized into the callback data of every
// control, and decoded back out when the control is pressed. The colon
// delimited formats below are the wire contract shared with the chat
// platform integration:
//
//	select:<id>
//	status:<id>:<newStatus>
//	page:<pageNumber>:<filterText>
//	back_to_list
//	noop
//
// The filter text is always the last field and is decoded with SplitN, so
// it may itself contain colons without corrupting the payload.
package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cupcycle/go-leads-backend/internal/domain"
	"github.com/cupcycle/go-leads-backend/internal/utils"
)

// Action identifies what a pressed control asks the console to do.
type Action string

const (
	ActionSelect Action = "select"
	ActionStatus Action = "status"
	ActionPage   Action = "page"
	ActionBack   Action = "back_to_list"
	ActionNoop   Action = "noop"
)

// ErrBadCallback is returned for payloads that do not match any known
// control format.
var ErrBadCallback = errors.New("malformed callback payload")

// Callback is a decoded control activation. Which fields are meaningful
// depends on Action: ID for select and status, Status for status, Page and
// FilterText for page.
type Callback struct {
	Action     Action
	ID         int64
	Status     domain.Status
	Page       int
	FilterText string
}

// Encode serializes cb into its callback-data string.
func (cb Callback) Encode() string {
	switch cb.Action {
	case ActionSelect:
		return fmt.Sprintf("select:%d", cb.ID)
	case ActionStatus:
		return fmt.Sprintf("status:%d:%s", cb.ID, cb.Status)
	case ActionPage:
		return fmt.Sprintf("page:%d:%s", cb.Page, cb.FilterText)
	case ActionBack:
		return string(ActionBack)
	default:
		return string(ActionNoop)
	}
}

// DecodeCallback parses raw callback data into a Callback, or
// ErrBadCallback when the payload matches no known control.
func DecodeCallback(data string) (Callback, error) {
	switch data {
	case string(ActionBack):
		return Callback{Action: ActionBack}, nil
	case string(ActionNoop):
		return Callback{Action: ActionNoop}, nil
	}

	switch {
	case strings.HasPrefix(data, "select:"):
		id, err := strconv.ParseInt(data[len("select:"):], 10, 64)
		if err != nil || id <= 0 {
			return Callback{}, ErrBadCallback
		}
		return Callback{Action: ActionSelect, ID: id}, nil

	case strings.HasPrefix(data, "status:"):
		parts := strings.SplitN(data, ":", 3)
		if len(parts) != 3 {
			return Callback{}, ErrBadCallback
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || id <= 0 {
			return Callback{}, ErrBadCallback
		}
		status := domain.Status(parts[2])
		if !status.Valid() {
			return Callback{}, ErrBadCallback
		}
		return Callback{Action: ActionStatus, ID: id, Status: status}, nil

	case strings.HasPrefix(data, "page:"):
		// Filter text keeps any colons it contains.
		parts := strings.SplitN(data, ":", 3)
		if len(parts) != 3 {
			return Callback{}, ErrBadCallback
		}
		page := utils.AtoiDefault(parts[1], 0)
		if page < 1 {
			return Callback{}, ErrBadCallback
		}
		return Callback{Action: ActionPage, Page: page, FilterText: parts[2]}, nil
	}

	return Callback{}, ErrBadCallback
}
