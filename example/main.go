package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/javi11/ustarlist"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <archive>.tar", os.Args[0])
	}

	a, closer, err := ustarlist.Open(os.Args[1])
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer func() { _ = closer.Close() }()

	n, err := a.Check()
	if err != nil {
		log.Fatalf("invalid archive: %v", err)
	}
	fmt.Printf("%d entries\n", n)

	entries, err := a.Entries()
	if err != nil {
		log.Fatalf("list entries: %v", err)
	}
	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
