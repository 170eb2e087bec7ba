package bmime_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/advdv/bmime"
)

func Example() {
	b, _ := bmime.NewBuilder()
	_ = b.SetBoundary("c3026bd2e580189c8526")
	_ = b.AddPart("comment", "hello")

	body, _ := b.Build()
	defer body.Close()

	data, _ := io.ReadAll(body)
	fmt.Println(b.ContentType())
	fmt.Print(strings.ReplaceAll(string(data), "\r\n", "\n"))
	// Output:
	// multipart/form-data; boundary=c3026bd2e580189c8526
	// --c3026bd2e580189c8526
	// Content-Disposition: form-data; name="comment"
	// Content-Length: 5
	//
	// hello
	// --c3026bd2e580189c8526--
}

func ExampleWithFilename() {
	b, _ := bmime.NewBuilder()
	_ = b.SetBoundary("c3026bd2e580189c8526")
	_ = b.AddPart("attachment", "a,b,c\n1,2,3", bmime.WithFilename("numbers.csv"))

	body, _ := b.Build()
	defer body.Close()

	data, _ := io.ReadAll(body)
	fmt.Print(strings.ReplaceAll(string(data), "\r\n", "\n"))
	// Output:
	// --c3026bd2e580189c8526
	// Content-Disposition: form-data; name="attachment"; filename="numbers.csv"
	// Content-Length: 11
	// Content-Type: text/csv
	//
	// a,b,c
	// 1,2,3
	// --c3026bd2e580189c8526--
}
