package crock32_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanagraspace/crock32/crock32"
)

func Example() {
	s := crock32.Encode([]byte("hello world"))
	fmt.Println(s)
	fmt.Println(string(crock32.Decode(strings.ToUpper(s))))
	// Output:
	// d1jprv3f41vpywkccg
	// hello world
}

func ExampleEncoder() {
	var enc crock32.Encoder
	out := enc.Update([]byte("foo"))
	out += enc.Update([]byte("bar"))
	out += enc.Flush(true)
	fmt.Println(out)
	// Output: csqpyrk1e8$
}

func ExampleDecoder() {
	var dec crock32.Decoder
	out := dec.Update("CSQ-PYR")
	out = append(out, dec.Update("K1E8$")...)
	out = append(out, dec.Flush(false)...)
	fmt.Println(string(out))
	// Output: foobar
}

func ExampleDecode_aliases() {
	fmt.Printf("%x\n", crock32.Decode("OIlLiIlL"))
	// Output: 0042108421
}

func ExampleNewWriter() {
	w := crock32.NewWriter(os.Stdout, false)
	io.WriteString(w, "Hello, World!")
	w.Close()
	fmt.Println()
	// Output: 91jprv3f5gg5evvjdhj22
}

func ExampleNewReader() {
	r := crock32.NewReader(strings.NewReader("91JPRV3F5GG5EVVJDHJ22"))
	b, _ := io.ReadAll(r)
	fmt.Println(string(b))
	// Output: Hello, World!
}
