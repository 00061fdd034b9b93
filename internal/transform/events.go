package transform

// eventHandlerAttrs enumerates inline event-handler attribute names
// removed by the aggressive profile. An enumerated set is safer than a
// bare "on" prefix match, which would also strike legitimate attributes
// like "onion-location" or data attributes on exotic markup.
var eventHandlerAttrs = map[string]bool{
	// Mouse
	"onclick":       true,
	"ondblclick":    true,
	"onmousedown":   true,
	"onmouseup":     true,
	"onmouseover":   true,
	"onmousemove":   true,
	"onmouseout":    true,
	"onmouseenter":  true,
	"onmouseleave":  true,
	"oncontextmenu": true,
	"onwheel":       true,

	// Keyboard
	"onkeydown":  true,
	"onkeypress": true,
	"onkeyup":    true,

	// Focus and forms
	"onfocus":   true,
	"onblur":    true,
	"onchange":  true,
	"oninput":   true,
	"onselect":  true,
	"onsubmit":  true,
	"onreset":   true,
	"oninvalid": true,

	// Document and resource lifecycle
	"onload":         true,
	"onunload":       true,
	"onbeforeunload": true,
	"onabort":        true,
	"onerror":        true,
	"onresize":       true,
	"onscroll":       true,

	// Clipboard
	"oncopy":  true,
	"oncut":   true,
	"onpaste": true,

	// Drag and drop
	"ondrag":      true,
	"ondragstart": true,
	"ondragend":   true,
	"ondragenter": true,
	"ondragleave": true,
	"ondragover":  true,
	"ondrop":      true,

	// Touch and pointer
	"ontouchstart":    true,
	"ontouchmove":     true,
	"ontouchend":      true,
	"ontouchcancel":   true,
	"onpointerdown":   true,
	"onpointerup":     true,
	"onpointermove":   true,
	"onpointerenter":  true,
	"onpointerleave":  true,
	"onpointercancel": true,

	// Media
	"onplay":         true,
	"onpause":        true,
	"onended":        true,
	"ontimeupdate":   true,
	"onvolumechange": true,
	"oncanplay":      true,

	// CSS animation
	"onanimationstart":     true,
	"onanimationend":       true,
	"onanimationiteration": true,
	"ontransitionend":      true,
}
