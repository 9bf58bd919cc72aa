package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI in-process with a fresh command tree.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const profileFixture = `{
	"skills": [{"id": 1, "name": "Python"}, {"id": 2, "name": "SQL"}],
	"categories": [{"id": 1, "name": "Backend"}],
	"bio": "Lập trình viên Python có kinh nghiệm"
}`

const jobsFixture = `[
	{
		"id": 1,
		"title": "Tuyển lập trình viên Python",
		"description": "<p>Phát triển <b>API</b> bằng Python</p>",
		"required_skills": [{"id": 1, "name": "Python"}, {"id": 2, "name": "SQL"}, {"id": 3, "name": "Docker"}]
	},
	{
		"id": 2,
		"title": "Kế toán trưởng",
		"description": "Quản lý sổ sách kế toán",
		"required_skills": [{"id": 9, "name": "Excel"}]
	}
]`
