// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audgraph/audio"
	"github.com/ik5/audgraph/formats/mp3"
)

// ExampleDecoder_Decode streams a file as render-sized blocks.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	blocks := audio.NewBlockReader(src, 128)
	defer blocks.Close()

	for {
		blk, err := blocks.ReadBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}

		_ = blk // hand the block to a graph node or sink
	}
}

// ExampleDecoder_Decode_registry registers the decoder by file extension.
func ExampleDecoder_Decode_registry() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	_, ok := reg.Get("MP3")
	fmt.Println(ok)
	// Output: true
}
