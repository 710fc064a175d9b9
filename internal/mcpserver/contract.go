package mcpserver

// FrontMatterContract describes the front matter that drives graph analysis.
const FrontMatterContract = `# Nexus Front Matter Contract

Each Markdown document (*.md) may start with a YAML block fenced by ` + "`---`" + ` lines.

## Fields

` + "```" + `markdown
---
title: Ownership and borrowing     # OPTIONAL - defaults to the file name
tags:                              # OPTIONAL - list, or one whitespace separated string
  - rust/ownership
  - lang/rust
ignore: false                      # OPTIONAL - true hides the document node
---
` + "```" + `

## Rules

1. **Tags are hierarchical.** ` + "`/`" + ` separates parent and child topics:
   ` + "`lang/rust`" + ` creates the topics ` + "`/lang`" + ` and ` + "`/lang/rust`" + `.
2. **Tags are normalized.** They are trimmed and lower-cased; empty tags are dropped.
3. **Relative tags attach to known topics.** When ` + "`lang/rust`" + ` exists, a tag
   ` + "`rust/ownership`" + ` resolves to ` + "`/lang/rust/ownership`" + `. Shorter tags are
   placed first.
4. **Ignored documents organize without appearing.** ` + "`ignore: true`" + ` keeps the
   document out of the graph while its tags still build topics.
5. **Malformed front matter is treated as absent.**
6. At most 50 documents are analyzed per directory tree.
7. An optional ` + "`nexus-odyssey.json`" + ` in the root may list gitignore-style
   patterns under ` + "`ignore`" + `.
`
