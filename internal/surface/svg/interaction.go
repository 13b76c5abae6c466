package svg

import (
	svgo "github.com/ajstarks/svgo"

	"github.com/slok/delorean/internal/surface"
)

const tooltipClass = "delorean-tooltip"

// hoverScript enlarges the markers of the hovered slot and shows the slot tooltip next to
// the pointer, flipped and clamped so it never leaves the document.
const hoverScript = `(function () {
  var s = document.currentScript;
  var root = (s && s.closest && s.closest("svg")) || document.documentElement;
  var tip = root.querySelector(".` + tooltipClass + `");
  var W = +root.getAttribute("width"), H = +root.getAttribute("height");
  function resize(slot, attr) {
    root.querySelectorAll(".` + surface.ClassPoint + `[` + surface.AttrSlot + `='" + slot + "']").forEach(function (p) {
      p.setAttribute("r", p.getAttribute(attr));
    });
  }
  function hide() {
    if (tip) { tip.setAttribute("visibility", "hidden"); }
  }
  function show(rect, evt) {
    var lines = rect.getAttribute("` + surface.AttrTooltip + `");
    if (!tip || !lines) { return; }
    var text = tip.querySelector("text"), box = tip.querySelector("rect");
    while (text.firstChild) { text.removeChild(text.firstChild); }
    lines.split("\n").forEach(function (l, i) {
      var t = document.createElementNS("http://www.w3.org/2000/svg", "tspan");
      t.setAttribute("x", 6);
      t.setAttribute("dy", i === 0 ? "1.1em" : "1.2em");
      t.textContent = l;
      text.appendChild(t);
    });
    tip.setAttribute("visibility", "visible");
    var b = text.getBBox(), w = b.width + 12, h = b.height + 8;
    box.setAttribute("width", w);
    box.setAttribute("height", h);
    var pt = root.createSVGPoint();
    pt.x = evt.clientX;
    pt.y = evt.clientY;
    var p = pt.matrixTransform(root.getScreenCTM().inverse());
    var x = p.x + 10, y = p.y - 10 - h;
    if (x + w > W) { x = p.x - 10 - w; }
    if (y < 0) { y = p.y + 10; }
    x = Math.max(0, Math.min(x, W - w));
    y = Math.max(0, Math.min(y, H - h));
    tip.setAttribute("transform", "translate(" + x + "," + y + ")");
  }
  root.querySelectorAll(".` + surface.ClassSlot + `").forEach(function (rect) {
    var slot = rect.getAttribute("` + surface.AttrSlot + `");
    rect.addEventListener("mouseenter", function () { resize(slot, "` + surface.AttrRadiusHover + `"); });
    rect.addEventListener("mouseleave", function () { resize(slot, "` + surface.AttrRadius + `"); hide(); });
    rect.addEventListener("mousemove", function (evt) { show(rect, evt); });
  });
})();`

func writeInteraction(canvas *svgo.SVG) {
	canvas.Group(attr("class", tooltipClass), attr("visibility", "hidden"), attr("pointer-events", "none"))
	canvas.Rect(0, 0, 0, 0, attr("rx", "3"), attr("fill", "#333333"), attr("opacity", "0.85"))
	canvas.Text(0, 0, "", attr("fill", "#FFFFFF"), attr("font-size", "11px"))
	canvas.Gend()
	canvas.Script("application/ecmascript", hoverScript)
}
