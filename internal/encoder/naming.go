package encoder

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// OutputPath returns the file a plot of inputPath is written to.
//
// With a single input the result is outputName.<format>. With many inputs
// every run of digits in the input's base name (extension removed) is
// replaced by the first integer of the base name, zero padded to nine
// digits, giving outputName_<name>.<format>. A base name without digits is
// used as is.
func OutputPath(outputName, inputPath string, many bool, format string) string {
	if !many {
		return outputName + "." + format
	}

	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if first := digitRun.FindString(base); first != "" {
		// Digit runs too long for an int keep their text.
		index := first
		if n, err := strconv.ParseUint(first, 10, 64); err == nil {
			index = fmt.Sprintf("%09d", n)
		}
		stem = digitRun.ReplaceAllLiteralString(stem, index)
	}

	return fmt.Sprintf("%s_%s.%s", outputName, stem, format)
}
