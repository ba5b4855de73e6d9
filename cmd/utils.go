package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/Geekoosh/ecs-exec-cli/internal/ui"
	"golang.org/x/term"
)

// readMFACode reads a masked MFA code from the terminal. An empty code means
// the MFA exchange is skipped and ambient credentials are used as-is. When
// stdin cannot enter raw mode (pipe, IDE console), the bubbletea masked
// input is used instead.
func readMFACode() string {
	code, err := readMFACodeRaw()
	if err == nil {
		return code
	}

	code, err = ui.GetInput("Enter MFA code (empty to skip)", "123456", true)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(code)
}

func readMFACodeRaw() (string, error) {
	fmt.Print("Enter MFA code (empty to skip): ")
	var code string
	var char byte
	buf := make([]byte, 1)

	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		fmt.Print("\r\n")
		return "", err
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	for {
		_, err := syscall.Read(syscall.Stdin, buf)
		if err != nil {
			fmt.Print("\r\n")
			return "", err
		}
		char = buf[0]

		if char == 13 || char == 10 { // Enter
			fmt.Print("\r\n")
			break
		} else if char == 127 || char == 8 { // Backspace
			if len(code) > 0 {
				code = code[:len(code)-1]
				fmt.Print("\b \b")
			}
		} else if char >= 32 && char <= 126 { // Printable characters
			code += string(char)
			fmt.Print("*")
		}
	}

	return strings.TrimSpace(code), nil
}
