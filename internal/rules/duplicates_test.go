package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/internal/types"
)

func TestCheckDuplicates(t *testing.T) {
	t.Run("later file is the duplicate, first-seen is canonical", func(t *testing.T) {
		inv := inventoryOf(
			"src/userController.js",
			"src/UserController.ts",
		)
		issues := CheckDuplicates(inv, ScopeTree)
		require.Len(t, issues, 1)
		assert.Equal(t, types.KindDuplicateFile, issues[0].Kind)
		assert.Equal(t, "src/UserController.ts", issues[0].File)
		assert.Contains(t, issues[0].Message, "src/userController.js")
	})

	t.Run("cross-directory stems collide under tree scope", func(t *testing.T) {
		inv := inventoryOf(
			"pkg/a/index.js",
			"pkg/b/index.js",
		)
		issues := CheckDuplicates(inv, ScopeTree)
		require.Len(t, issues, 1)
		assert.Equal(t, "pkg/b/index.js", issues[0].File)
	})

	t.Run("directory scope tolerates cross-directory stems", func(t *testing.T) {
		inv := inventoryOf(
			"pkg/a/index.js",
			"pkg/b/index.js",
			"pkg/b/Index.ts",
		)
		issues := CheckDuplicates(inv, ScopeDirectory)
		require.Len(t, issues, 1)
		assert.Equal(t, "pkg/b/Index.ts", issues[0].File)
		assert.Contains(t, issues[0].Message, "pkg/b/index.js")
	})

	t.Run("three-way collision reports each later file once", func(t *testing.T) {
		inv := inventoryOf(
			"src/app.js",
			"src/App.jsx",
			"lib/APP.ts",
		)
		issues := CheckDuplicates(inv, ScopeTree)
		require.Len(t, issues, 2)
		assert.Equal(t, "src/App.jsx", issues[0].File)
		assert.Equal(t, "lib/APP.ts", issues[1].File)
		// Both name the first-seen file, never each other.
		assert.Contains(t, issues[0].Message, "src/app.js")
		assert.Contains(t, issues[1].Message, "src/app.js")
	})

	t.Run("distinct stems never collide", func(t *testing.T) {
		inv := inventoryOf("src/app.js", "src/api.js")
		assert.Empty(t, CheckDuplicates(inv, ScopeTree))
	})
}
