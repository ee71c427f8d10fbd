package validation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Notifications is an ordered, append-only list of validation messages.
type Notifications struct {
	messages []string
}

func NewNotifications() *Notifications {
	return &Notifications{}
}

func (n *Notifications) Append(message string) {
	n.messages = append(n.messages, message)
}

func (n *Notifications) Appendf(format string, args ...interface{}) {
	n.Append(fmt.Sprintf(format, args...))
}

// Concat appends every message of other, in order.
func (n *Notifications) Concat(other *Notifications) {
	if other == nil {
		return
	}

	n.messages = append(n.messages, other.messages...)
}

func (n *Notifications) IsEmpty() bool {
	return len(n.messages) == 0
}

func (n *Notifications) Len() int {
	return len(n.messages)
}

func (n *Notifications) Messages() []string {
	return n.messages[:len(n.messages):len(n.messages)]
}

// ErrorMessage joins all messages with ", " in the order they were added.
func (n *Notifications) ErrorMessage() string {
	return strings.Join(n.messages, ", ")
}

// Err returns nil when there are no messages.
func (n *Notifications) Err() error {
	if n.IsEmpty() {
		return nil
	}

	return errors.New(n.ErrorMessage())
}

//
// Helpers

func quoteJoin(names []string) string {
	return `"` + strings.Join(names, `", "`) + `"`
}
