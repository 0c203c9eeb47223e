package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	infoColorFG  = pterm.FgLightGreen
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayModuleMessage displays an error or warning produced while resolving a
// module or library.  The label is the string to prefix the message with: eg.
// if we want to display an error, the label is "error".
func displayModuleMessage(label, modName, message string) {
	if label == "error" {
		errorStyleBG.Print(label)
		errorColorFG.Println(fmt.Sprintf(" [%s] %s", modName, message))
	} else {
		warnStyleBG.Print(label)
		warnColorFG.Println(fmt.Sprintf(" [%s] %s", modName, message))
	}
}

// displayStdError displays a standard Go error.
func displayStdError(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("fatal")
	errorColorFG.Println(" " + message)
}

// displayInfoMessage displays a tagged informational message.
func displayInfoMessage(tag, msg string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + msg)
}
