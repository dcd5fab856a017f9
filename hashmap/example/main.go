package main

import (
	"log"

	"github.com/webbmaffian/go-collections/hashmap"
)

func main() {
	m, err := hashmap.New[uint32, string](4, 0.75)

	if err != nil {
		log.Fatal(err)
	}

	for i := uint32(0); i < 4; i++ {
		if _, _, err = m.Put(i, "value"); err != nil {
			log.Fatal(err)
		}
	}

	if _, _, err = m.Put(123, "first"); err != nil {
		log.Fatal(err)
	}

	old, replaced, err := m.Put(123, "second")

	if err != nil {
		log.Fatal(err)
	}

	log.Println("replaced:", replaced, "old:", old)
	log.Println(m.Size(), "items in", m.Buckets(), "buckets")

	iter := m.Iterate()

	for iter.Next() {
		log.Println(iter.Key(), "=", iter.Val())
	}

	if err = m.Verify(); err != nil {
		log.Fatal(err)
	}
}
