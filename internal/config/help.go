package config

import "fmt"

// HelpText returns the usage message printed when arguments are missing.
func HelpText(program string) string {
	return fmt.Sprintf(`Usage: %[1]s [flags] QUERY FILE
Search for QUERY in FILE and print every line that contains it.
Example: %[1]s hello main.c

Set the %[2]s environment variable (to any value)
to make the search case-insensitive.`, program, CaseInsensitiveEnv)
}
