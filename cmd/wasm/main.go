//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"doccomment/internal/adapter/analyzer"
	"doccomment/internal/adapter/cache"
	"doccomment/internal/adapter/markup"
	"doccomment/internal/adapter/memstore"
	"doccomment/internal/adapter/render"
	"doccomment/internal/domain"
	"doccomment/internal/port"
)

var (
	store  *memstore.MemoryStore
	parser *analyzer.DocParser
)

func init() {
	store = memstore.NewMemoryStore()
	parser = analyzer.NewDocParser(cache.NewRecordCache(0, 0), nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("doccommentParse", js.FuncOf(parseSource))
	js.Global().Set("doccommentRender", js.FuncOf(renderDocs))
	js.Global().Set("doccommentMarkup", js.FuncOf(renderMarkup))
	js.Global().Set("doccommentClear", js.FuncOf(clearUnits))

	<-c
}

// parseSource parses one source file and keeps its node for doccommentRender.
func parseSource(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: doccommentParse(filename, content)")
	}

	filename := args[0].String()
	content := args[1].String()

	node, err := parser.ParseSource(filename, content)
	if err != nil {
		return makeError(err.Error())
	}
	store.PutUnit(filename, "", node)

	return makeResult(map[string]interface{}{
		"success":  true,
		"filename": filename,
		"node":     node,
	})
}

// renderDocs renders every parsed unit: doccommentRender(format, name, version).
func renderDocs(this js.Value, args []js.Value) interface{} {
	format := "md"
	if len(args) > 0 {
		format = args[0].String()
	}
	docs := &domain.BuiltDocs{Tree: store.Tree()}
	if len(args) > 2 {
		docs.Name = args[1].String()
		docs.Version = args[2].String()
	}

	renderer, err := render.New(format)
	if err != nil {
		return makeError(err.Error())
	}
	out, err := renderer.Render(docs, port.RenderOptions{})
	if err != nil {
		return makeError(err.Error())
	}

	return makeResult(map[string]interface{}{
		"output": string(out),
		"files":  store.ListUnits(),
	})
}

func renderMarkup(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: doccommentMarkup(text)")
	}

	out, warnings := markup.Render(args[0].String())
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.String()
	}

	return makeResult(map[string]interface{}{
		"html":     out,
		"warnings": messages,
	})
}

func clearUnits(this js.Value, args []js.Value) interface{} {
	store.Clear()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
