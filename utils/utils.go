package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// Normalize lower-cases and trims user input, e.g "  New York City\n" -> "new york city"
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Title returns the word with its first letter in upper case, e.g "monday" -> "Monday"
func Title(word string) string {
	return titleCaser.String(word)
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
