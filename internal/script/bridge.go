package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridpaint/internal/interp"
)

// installBridge exposes the paint API to a script as a global table.
//
//	ok, msg = paint.cmd("line 0 0 4 4")  -- run one drawing command
//	w, h = paint.size()                  -- canvas dimensions
//	p = paint.pen()                      -- current pen character
func installBridge(L *lua.LState, s *interp.Session) {
	paint := L.NewTable()

	L.SetField(paint, "cmd", L.NewFunction(func(L *lua.LState) int {
		line := L.CheckString(1)

		res, err := s.Apply(line)
		if err != nil {
			L.Push(lua.LFalse)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(lua.LTrue)
		L.Push(lua.LString(res.Message))
		return 2
	}))

	L.SetField(paint, "size", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(s.Canvas().Width()))
		L.Push(lua.LNumber(s.Canvas().Height()))
		return 2
	}))

	L.SetField(paint, "pen", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(string(s.Canvas().Pen())))
		return 1
	}))

	L.SetGlobal("paint", paint)
}
