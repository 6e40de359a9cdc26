// Package repository owns the in-memory record collections.
//
// Each resource type lives in one insertion-ordered Collection for the
// lifetime of the process. Collections hand out copies, so a record is
// only changed through Append, Update or Remove.
package repository
