package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/khangtran94/parking-alpr-api/pkg/token"
)

// Mints API tokens offline, in the same format the server issues. Useful
// for seeding a database by hand or rotating a token outside the API.
func main() {
	count := flag.Int("n", 1, "Number of tokens to generate")
	flag.Parse()

	for i := 0; i < *count; i++ {
		t, err := token.New()
		if err != nil {
			log.Fatalf("Error generating token: %v", err)
		}
		fmt.Println(t)
	}
}
