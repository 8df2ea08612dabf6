package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the persisted shape of a graph. Dependencies reference tasks by
// display name, so a document with duplicate names cannot round-trip its
// edges; loading warns and skips the unresolvable ones.
type Document struct {
	Tasks        []TaskRecord       `json:"tasks"`
	Dependencies []DependencyRecord `json:"dependencies"`
}

type TaskRecord struct {
	Name   string `json:"name"`
	Pos    Point  `json:"pos"`
	Status Status `json:"status"`
}

type DependencyRecord struct {
	Predecessor string `json:"predecessor"`
	Successor   string `json:"successor"`
}

// GetGraph snapshots the live graph as a Document, tasks in render order and
// dependencies ordered by their predecessor's render position.
func (e *Editor) GetGraph() Document {
	doc := Document{
		Tasks:        make([]TaskRecord, 0, e.graph.Len()),
		Dependencies: []DependencyRecord{},
	}
	for _, t := range e.graph.Tasks() {
		doc.Tasks = append(doc.Tasks, TaskRecord{Name: t.Name, Pos: t.Pos, Status: t.Status})
	}
	for _, d := range e.graph.Dependencies() {
		doc.Dependencies = append(doc.Dependencies, DependencyRecord{
			Predecessor: d.From.Name,
			Successor:   d.To.Name,
		})
	}
	return doc
}

// LoadGraph replaces the editor's contents with the document's. Tasks load in
// document order so render stacking survives a round trip. Dependencies whose
// endpoint names are missing or ambiguous are skipped with a warning; the
// rest of the document still loads.
func (e *Editor) LoadGraph(doc Document) {
	e.ClearGraph()
	for _, rec := range doc.Tasks {
		e.graph.AddTask(rec.Name, rec.Pos, rec.Status)
	}
	for _, rec := range doc.Dependencies {
		from, err := e.graph.ResolveName(rec.Predecessor)
		if err != nil {
			e.logger.Warn("skipping dependency", "predecessor", rec.Predecessor, "successor", rec.Successor, "err", err)
			continue
		}
		to, err := e.graph.ResolveName(rec.Successor)
		if err != nil {
			e.logger.Warn("skipping dependency", "predecessor", rec.Predecessor, "successor", rec.Successor, "err", err)
			continue
		}
		if _, err := e.graph.AddDependency(from, to); err != nil {
			e.logger.Warn("skipping dependency", "predecessor", rec.Predecessor, "successor", rec.Successor, "err", err)
		}
	}
}

func saveDocument(doc Document, filename string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func openDocument(filename string) (Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return doc, nil
}
