package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NumberPrefix is the stable prefix every order number starts with.
const NumberPrefix = "ORD-"

// numberSuffixLength is the number of high-entropy characters appended to
// the timestamp part of an order number.
const numberSuffixLength = 8

// NewOrderNumber generates a unique order number of the form
// ORD-<millisecond timestamp>-<8 uppercase characters from a random UUID>.
//
// The combination of wall-clock milliseconds and a random suffix keeps the
// collision probability negligible without a global counter. Numbers are not
// guaranteed to be monotonically ordered; listings sort on createdAt.
func NewOrderNumber() string {
	timestamp := time.Now().UnixMilli()
	suffix := strings.ToUpper(uuid.NewString()[:numberSuffixLength])
	return fmt.Sprintf("%s%d-%s", NumberPrefix, timestamp, suffix)
}
