package main

import (
	"fmt"
	"log"

	"github.com/gofsio/fsio"
)

func main() {
	tempFile := fsio.TemporaryFilePath("txt")
	fmt.Println("temporary file path:", tempFile)

	if err := fsio.WriteTextFile(tempFile, "hello\n"); err != nil {
		log.Panic(err)
	}
	defer fsio.DeleteIgnoreError(tempFile)

	if err := fsio.AppendTextFile(tempFile, "world\n"); err != nil {
		log.Panic(err)
	}

	content, err := fsio.ReadTextFile(tempFile)
	if err != nil {
		log.Panic(err)
	}
	fmt.Print("content:\n", content)

	canonical, err := fsio.CanonicalizeAsString(tempFile)
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("canonical:", canonical)

	if name, ok := fsio.Basename(tempFile); ok {
		fmt.Println("basename:", name)
	}
	if parent, ok := fsio.ParentDirectory(tempFile); ok {
		fmt.Println("parent:", parent)
	}

	// A missing path falls back to the supplied value.
	fmt.Println("fallback:", fsio.CanonicalizeOr("./no/such/path", "<missing>"))
}
