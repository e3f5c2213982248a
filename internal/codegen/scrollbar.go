package codegen

const scrollbarJS = `/* Generated by faceplate. Do not edit. */
(function () {
  'use strict';

  function config(el) {
    var cfg = {};
    try {
      cfg = JSON.parse(el.dataset.customScrollbar || '{}');
    } catch (err) {
      cfg = {};
    }
    return {
      width: cfg.width > 0 ? cfg.width : 8,
      thumbColor: cfg.thumbColor || '#6b7280',
      trackColor: cfg.trackColor || 'transparent',
      showArrows: !!cfg.showArrows
    };
  }

  function box(parent, css) {
    var d = document.createElement('div');
    d.style.cssText = 'position:absolute;box-sizing:border-box;' + css;
    parent.appendChild(d);
    return d;
  }

  function arrow(parent, css, dir, cfg) {
    var a = box(parent, css + 'width:' + cfg.width + 'px;height:' + cfg.width + 'px;cursor:pointer;' +
      'display:flex;align-items:center;justify-content:center;background:' + cfg.trackColor + ';');
    var s = cfg.width * 0.3;
    a.style.fontSize = (cfg.width * 0.8) + 'px';
    a.style.lineHeight = '1';
    a.style.color = cfg.thumbColor;
    a.style.padding = s / 4 + 'px';
    a.textContent = { up: '▴', down: '▾', left: '◂', right: '▸' }[dir];
    return a;
  }

  // axis builds one scrollbar. vertical selects the block axis.
  function axis(host, content, cfg, vertical) {
    var size = cfg.width;
    var arrows = cfg.showArrows ? size : 0;
    var bar = box(host, vertical
      ? 'top:0;right:0;bottom:' + size + 'px;width:' + size + 'px;'
      : 'left:0;bottom:0;right:' + size + 'px;height:' + size + 'px;');
    bar.style.background = cfg.trackColor;
    bar.className = 'fp-scrollbar fp-scrollbar-' + (vertical ? 'v' : 'h');
    var track = box(bar, vertical
      ? 'left:0;right:0;top:' + arrows + 'px;bottom:' + arrows + 'px;'
      : 'top:0;bottom:0;left:' + arrows + 'px;right:' + arrows + 'px;');
    var thumb = box(track, 'border-radius:' + size / 2 + 'px;background:' + cfg.thumbColor + ';' +
      (vertical ? 'left:1px;right:1px;' : 'top:1px;bottom:1px;'));
    var step = 40;
    if (cfg.showArrows) {
      var back = arrow(bar, vertical ? 'top:0;left:0;' : 'left:0;top:0;', vertical ? 'up' : 'left', cfg);
      var fwd = arrow(bar, vertical ? 'bottom:0;left:0;' : 'right:0;top:0;', vertical ? 'down' : 'right', cfg);
      back.addEventListener('click', function () { scrollBy(-step); });
      fwd.addEventListener('click', function () { scrollBy(step); });
    }

    function scrollBy(d) {
      if (vertical) {
        content.scrollTop += d;
      } else {
        content.scrollLeft += d;
      }
    }

    function metrics() {
      var view = vertical ? content.clientHeight : content.clientWidth;
      var total = vertical ? content.scrollHeight : content.scrollWidth;
      var pos = vertical ? content.scrollTop : content.scrollLeft;
      var len = vertical ? track.clientHeight : track.clientWidth;
      return { view: view, total: total, pos: pos, len: len };
    }

    function update() {
      var m = metrics();
      var visible = m.total > m.view + 1;
      bar.style.display = visible ? '' : 'none';
      if (!visible) {
        return false;
      }
      var thumbLen = Math.max(size * 2, m.len * m.view / m.total);
      var offset = (m.len - thumbLen) * m.pos / (m.total - m.view);
      thumb.style[vertical ? 'height' : 'width'] = thumbLen + 'px';
      thumb.style[vertical ? 'top' : 'left'] = offset + 'px';
      return true;
    }

    thumb.addEventListener('pointerdown', function (e) {
      e.preventDefault();
      e.stopPropagation();
      var start = vertical ? e.clientY : e.clientX;
      var from = vertical ? content.scrollTop : content.scrollLeft;
      var m = metrics();
      var thumbLen = vertical ? thumb.offsetHeight : thumb.offsetWidth;
      var ratio = (m.total - m.view) / Math.max(m.len - thumbLen, 1);
      if (thumb.setPointerCapture) {
        thumb.setPointerCapture(e.pointerId);
      }
      function onMove(ev) {
        var d = ((vertical ? ev.clientY : ev.clientX) - start) * ratio;
        if (vertical) {
          content.scrollTop = from + d;
        } else {
          content.scrollLeft = from + d;
        }
      }
      function onUp() {
        thumb.removeEventListener('pointermove', onMove);
        thumb.removeEventListener('pointerup', onUp);
      }
      thumb.addEventListener('pointermove', onMove);
      thumb.addEventListener('pointerup', onUp);
    });

    track.addEventListener('pointerdown', function (e) {
      if (e.target !== track) {
        return;
      }
      var r = thumb.getBoundingClientRect();
      var before = vertical ? e.clientY < r.top : e.clientX < r.left;
      var m = metrics();
      scrollBy(before ? -m.view : m.view);
    });

    return update;
  }

  function init(content) {
    if (content._fpScrollbar) {
      return;
    }
    content._fpScrollbar = true;
    var cfg = config(content);
    var host = content.parentElement || content;
    content.style.overflow = 'auto';
    content.style.scrollbarWidth = 'none';
    content.style.msOverflowStyle = 'none';
    var updateV = axis(host, content, cfg, true);
    var updateH = axis(host, content, cfg, false);
    var corner = box(host, 'right:0;bottom:0;width:' + cfg.width + 'px;height:' + cfg.width + 'px;background:' + cfg.trackColor + ';');
    corner.className = 'fp-scrollbar-corner';
    function update() {
      var v = updateV();
      var h = updateH();
      corner.style.display = v && h ? '' : 'none';
    }
    content.addEventListener('scroll', update);
    window.addEventListener('resize', update);
    if (typeof ResizeObserver !== 'undefined') {
      new ResizeObserver(update).observe(content);
    }
    update();
  }

  function initAll() {
    var nodes = document.querySelectorAll('[data-custom-scrollbar]');
    for (var i = 0; i < nodes.length; i++) {
      init(nodes[i]);
    }
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', initAll);
  } else {
    initAll();
  }
  document.addEventListener('faceplate:window-shown', initAll);
})();
`

// GenerateScrollbarJS renders scrollbar.js, which replaces native
// scrollbars on every [data-custom-scrollbar] element.
func GenerateScrollbarJS() string { return scrollbarJS }
