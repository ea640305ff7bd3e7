package content

import (
	"testing"
	"testing/fstest"
	"time"
)

var testTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func mapFile(data string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(data), ModTime: testTime}
}

func mapRepo(t *testing.T, files map[string]string) *FSRepository {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = mapFile(data)
	}
	return NewFSRepository(fsys)
}

const helloPost = `---
title: Hello
author: Ann
date: 2024-01-15
---
# Hi
World
`
