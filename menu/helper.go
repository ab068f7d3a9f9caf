package menu

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"expenses/domain"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) string {
	fmt.Print(prompt)
	s, _ := stdin.ReadString('\n')
	return strings.TrimSpace(s)
}

// readDateString re-prompts until the input is a valid YYYY-MM-DD day. Empty input
// means today; future dates are refused. The returned value is the raw string form,
// parsing it for real happens inside the add operation.
func readDateString(label string) string {
	for {
		raw := readLine(label + " (YYYY-MM-DD, empty = today): ")
		if raw == "" {
			return time.Now().Format(domain.DateLayout)
		}
		t, err := time.ParseInLocation(domain.DateLayout, raw, time.Local)
		if err != nil {
			fmt.Println("Invalid date format, expected YYYY-MM-DD")
			continue
		}
		now := time.Now().In(time.Local)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if t.After(today) {
			fmt.Println("Dates in the future are not allowed.")
			continue
		}
		return t.Format(domain.DateLayout)
	}
}

// readAmountString re-prompts until the input parses as a positive number.
func readAmountString(prompt string) string {
	for {
		raw := readLine(prompt)
		raw = strings.ReplaceAll(raw, ",", ".")
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Invalid amount. Example: 42.50")
			continue
		}
		if !amt.GreaterThan(decimal.Zero) {
			fmt.Println("Amount must be greater than zero.")
			continue
		}
		return raw
	}
}

// chooseCategory shows the allowed set as a numbered list and re-prompts until a
// valid choice is made.
func chooseCategory(cats domain.CategorySet) string {
	names := cats.Names()
	for {
		fmt.Println("=== Categories ===")
		for i, n := range names {
			fmt.Printf("%d) %s\n", i+1, n)
		}
		raw := readLine("Pick a category #: ")
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(names) {
			fmt.Println("Invalid choice")
			continue
		}
		return names[n-1]
	}
}

func confirm(prompt string) bool {
	s := strings.ToLower(readLine(prompt + " [y/N]: "))
	return s == "y" || s == "yes"
}
