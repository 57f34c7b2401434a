package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chainhash"
)

func main() {
	logger := log.New()
	logger.SetLevel(log.DebugLevel)

	// Two buckets, so the third line has to trigger growth
	ht, err := chainhash.New[string](2, chainhash.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	ht.Insert("line_1", "Tiny hash table")
	ht.Insert("line_2", "Filled beyond capacity")
	ht.Insert("line_3", "Linked list saves the day!")

	fmt.Println()

	// Storing beyond the initial capacity
	printLines(ht)

	oldCapacity := ht.Capacity()
	ht.Resize()
	newCapacity := ht.Capacity()

	fmt.Printf("\nResized from %d to %d.\n\n", oldCapacity, newCapacity)

	// Data intact after resizing
	printLines(ht)

	if !ht.Remove("line_4") {
		fmt.Println("\nline_4 was never inserted")
	}

	for _, key := range []string{"line_1", "line_2", "line_3"} {
		ht.Remove(key)
	}
	fmt.Printf("Emptied table shrank to %d bucket(s)\n", ht.Capacity())
}

func printLines(ht *chainhash.Table[string]) {
	for _, key := range []string{"line_1", "line_2", "line_3"} {
		value, found := ht.Retrieve(key)
		if found {
			fmt.Println(value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}
}
