// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ik5/asiobridge/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(strings.NewReader("not an aiff"))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("rejected")
	}
	// Output: rejected
}
