package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chash"
)

func main() {
	// Create a table with 10 buckets
	table, err := chash.New[int](10)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Table created successfully")

	// Insert some data
	table.Put("key1", 100)
	table.Put("key2", 200)
	table.Put("key3", 300)

	fmt.Printf("Inserted %d key-value pairs\n", table.Len())

	// Show which buckets the keys landed in
	fmt.Print(table)

	// Retrieve and display some values
	for _, key := range []string{"key1", "key2", "key3", "key4"} {
		value, found := table.Get(key)
		if found {
			fmt.Printf("Key %s => Value %d\n", key, value)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value
	table.Put("key2", 999)

	// Verify the update
	if value, found := table.Get("key2"); found {
		fmt.Printf("Updated key2 => Value %d\n", value)
	}

	// Delete a key
	if table.Delete("key1") {
		fmt.Printf("Deleted key1, %d entries remain\n", table.Len())
	}

	// Show the final state
	fmt.Print(table)

	fmt.Println("Example completed successfully")
}
