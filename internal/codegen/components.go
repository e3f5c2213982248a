package codegen

// componentsJS is the shared procedural renderer. Bindings call into it
// after every value change; the geometry matches polar and arcPath.
const componentsJS = `/* Generated by faceplate. Do not edit. */
(function (global) {
  'use strict';
  if (global.fpRenderKnob) {
    return;
  }

  function fpNum(v) {
    return Math.round(v * 1e4) / 1e4;
  }

  function fpClamp01(v) {
    v = Number(v);
    if (isNaN(v)) {
      return 0;
    }
    return Math.max(0, Math.min(1, v));
  }

  function fpCssNumber(el, name, fallback) {
    var n = parseFloat(global.getComputedStyle(el).getPropertyValue(name));
    return isNaN(n) ? fallback : n;
  }

  function fpCssColor(el, name, fallback) {
    var v = global.getComputedStyle(el).getPropertyValue(name).trim();
    return v || fallback;
  }

  function fpPolar(cx, cy, r, deg) {
    var rad = (deg - 90) * Math.PI / 180;
    return { x: cx + r * Math.cos(rad), y: cy + r * Math.sin(rad) };
  }

  function fpArcPath(cx, cy, r, start, end) {
    if (end < start) {
      var t = start;
      start = end;
      end = t;
    }
    if (end - start < 0.001) {
      return '';
    }
    if (end - start >= 360) {
      end = start + 359.999;
    }
    var p1 = fpPolar(cx, cy, r, start);
    var p2 = fpPolar(cx, cy, r, end);
    var large = end - start > 180 ? '1' : '0';
    return 'M ' + fpNum(p1.x) + ' ' + fpNum(p1.y) +
      ' A ' + fpNum(r) + ' ' + fpNum(r) + ' 0 ' + large + ' 1 ' + fpNum(p2.x) + ' ' + fpNum(p2.y);
  }

  function fpFormatValue(value, normalized, format, decimals, suffix) {
    decimals = Math.max(0, parseInt(decimals, 10) || 0);
    switch (format) {
      case 'percentage':
        return Math.round(normalized * 100) + '%';
      case 'db':
        return value.toFixed(decimals) + ' dB';
      case 'hz':
        if (Math.abs(value) >= 1000) {
          return (value / 1000).toFixed(decimals) + ' kHz';
        }
        return value.toFixed(decimals) + ' Hz';
      case 'custom':
        return value.toFixed(decimals) + (suffix || '');
      default:
        return value.toFixed(decimals);
    }
  }

  function fpRenderValue(el, norm) {
    var out = el.querySelector('.control-value');
    if (!out) {
      return;
    }
    var min = parseFloat(el.dataset.min) || 0;
    var max = parseFloat(el.dataset.max);
    if (isNaN(max)) {
      max = 1;
    }
    var raw = min + norm * (max - min);
    out.textContent = fpFormatValue(raw, norm, out.dataset.format, out.dataset.decimals, out.dataset.suffix);
  }

  function fpRenderKnob(el, norm) {
    norm = fpClamp01(norm);
    var svg = el.querySelector('.knob-svg');
    if (!svg) {
      return;
    }
    var size = svg.viewBox.baseVal.width || Math.min(el.clientWidth, el.clientHeight);
    var tw = fpCssNumber(el, '--fp-track-width', 4);
    var start = fpCssNumber(el, '--fp-start-angle', -135);
    var end = fpCssNumber(el, '--fp-end-angle', 135);
    var cx = size / 2, cy = size / 2;
    var r = Math.max((size - tw) / 2 - 1, 1);
    var angle = start + norm * (end - start);
    var from = el.dataset.type === 'centerdetentknob' ? (start + end) / 2 : start;

    var fill = svg.querySelector('.knob-arc-fill');
    if (fill) {
      fill.setAttribute('d', fpArcPath(cx, cy, r, from, angle));
    }
    var ind = svg.querySelector('.knob-indicator');
    if (ind && ind.tagName.toLowerCase() === 'circle') {
      var p = fpPolar(cx, cy, r * 0.7, angle);
      ind.setAttribute('cx', fpNum(p.x));
      ind.setAttribute('cy', fpNum(p.y));
    } else if (ind) {
      var p1 = fpPolar(cx, cy, r * 0.4, angle);
      var p2 = fpPolar(cx, cy, r * 0.9, angle);
      ind.setAttribute('x1', fpNum(p1.x));
      ind.setAttribute('y1', fpNum(p1.y));
      ind.setAttribute('x2', fpNum(p2.x));
      ind.setAttribute('y2', fpNum(p2.y));
    }
    el.dataset.value = fpNum(norm);
    fpRenderValue(el, norm);
  }

  function fpRenderArc(el, norm) {
    norm = fpClamp01(norm);
    var svg = el.querySelector('.arc-svg');
    if (!svg) {
      return;
    }
    var size = svg.viewBox.baseVal.width || Math.min(el.clientWidth, el.clientHeight);
    var tw = fpCssNumber(el, '--fp-track-width', 4);
    var start = fpCssNumber(el, '--fp-start-angle', -135);
    var end = fpCssNumber(el, '--fp-end-angle', 135);
    var cx = size / 2, cy = size / 2;
    var r = Math.max((size - tw) / 2 - 4, 1);
    var angle = start + norm * (end - start);
    var fill = svg.querySelector('.arc-fill');
    if (fill) {
      fill.setAttribute('d', fpArcPath(cx, cy, r, start, angle));
    }
    var thumb = svg.querySelector('.arc-thumb');
    if (thumb) {
      var p = fpPolar(cx, cy, r, angle);
      thumb.setAttribute('cx', fpNum(p.x));
      thumb.setAttribute('cy', fpNum(p.y));
    }
    el.dataset.value = fpNum(norm);
    fpRenderValue(el, norm);
  }

  function fpRenderSlider(el, norm) {
    norm = fpClamp01(norm);
    var vertical = el.classList.contains('vertical');
    var from = el.dataset.type === 'bipolarslider' ? 0.5 : 0;
    var lo = Math.min(from, norm), hi = Math.max(from, norm);
    var fill = el.querySelector('.slider-fill');
    var thumb = el.querySelector('.slider-thumb');
    if (fill) {
      fill.style[vertical ? 'bottom' : 'left'] = fpNum(lo * 100) + '%';
      fill.style[vertical ? 'height' : 'width'] = fpNum((hi - lo) * 100) + '%';
    }
    if (thumb) {
      thumb.style[vertical ? 'bottom' : 'left'] = fpNum(norm * 100) + '%';
    }
    el.dataset.value = fpNum(norm);
    fpRenderValue(el, norm);
  }

  function fpRenderRange(el, lo, hi) {
    lo = fpClamp01(lo);
    hi = fpClamp01(hi);
    if (lo > hi) {
      var t = lo;
      lo = hi;
      hi = t;
    }
    var vertical = el.classList.contains('vertical');
    var a = vertical ? 'bottom' : 'left', z = vertical ? 'height' : 'width';
    var fill = el.querySelector('.range-fill');
    if (fill) {
      fill.style[a] = fpNum(lo * 100) + '%';
      fill.style[z] = fpNum((hi - lo) * 100) + '%';
    }
    var tmin = el.querySelector('.range-thumb-min');
    var tmax = el.querySelector('.range-thumb-max');
    if (tmin) {
      tmin.style[a] = fpNum(lo * 100) + '%';
    }
    if (tmax) {
      tmax.style[a] = fpNum(hi * 100) + '%';
    }
    el.dataset.low = fpNum(lo);
    el.dataset.high = fpNum(hi);
  }

  function fpRenderMeter(el, norm) {
    norm = fpClamp01(norm);
    var vertical = el.classList.contains('vertical');
    var fill = el.querySelector('.meter-fill');
    if (fill) {
      fill.style[vertical ? 'height' : 'width'] = fpNum(norm * 100) + '%';
    }
    var peak = el.querySelector('.meter-peak');
    if (peak) {
      var now = Date.now();
      if (el._fpPeak === undefined || norm >= el._fpPeak || now - el._fpPeakAt > 1500) {
        el._fpPeak = norm;
        el._fpPeakAt = now;
      }
      var inverted = el.classList.contains('inverted');
      var side = vertical ? (inverted ? 'top' : 'bottom') : (inverted ? 'right' : 'left');
      peak.style[side] = fpNum(el._fpPeak * 100) + '%';
    }
    el.dataset.value = fpNum(norm);
  }

  function fpRenderReadout(el, value, format, suffix) {
    var out = el.querySelector('.readout-value');
    if (!out) {
      return;
    }
    out.textContent = fpFormatValue(Number(value) || 0, fpClamp01(value), format, el.dataset.decimals, suffix);
    el.dataset.value = fpNum(Number(value) || 0);
  }

  function fpDrawGrid(ctx, w, h) {
    ctx.beginPath();
    for (var i = 1; i < 4; i++) {
      ctx.moveTo(w * i / 4, 0);
      ctx.lineTo(w * i / 4, h);
      ctx.moveTo(0, h * i / 4);
      ctx.lineTo(w, h * i / 4);
    }
    ctx.stroke();
  }

  // fpDrawScope paints samples in [-1,1] onto the element's canvas. Spectrum
  // analyzers draw bars from samples in [0,1]; goniometers plot pairs.
  function fpDrawScope(el, samples) {
    var canvas = el.querySelector('.scope-canvas');
    if (!canvas || !canvas.getContext) {
      return;
    }
    var ctx = canvas.getContext('2d');
    var w = canvas.width, h = canvas.height;
    ctx.clearRect(0, 0, w, h);
    if (el.dataset.grid === 'true') {
      ctx.strokeStyle = fpCssColor(el, '--fp-grid-color', '#333333');
      ctx.lineWidth = 1;
      fpDrawGrid(ctx, w, h);
    }
    samples = samples || [];
    var color = fpCssColor(el, '--fp-trace-color', '#22c55e');
    ctx.strokeStyle = color;
    ctx.fillStyle = color;
    ctx.lineWidth = fpCssNumber(el, '--fp-line-width', 2);

    if (el.dataset.type === 'spectrumanalyzer') {
      var bars = parseInt(el.dataset.bars, 10) || samples.length || 1;
      var bw = w / bars;
      for (var b = 0; b < bars; b++) {
        var v = fpClamp01(samples[b] || 0);
        ctx.fillRect(b * bw + 1, h - v * h, Math.max(bw - 2, 1), v * h);
      }
      return;
    }
    ctx.beginPath();
    if (el.dataset.type === 'goniometer') {
      for (var g = 0; g + 1 < samples.length; g += 2) {
        var x = w / 2 + (samples[g] - samples[g + 1]) * w / 4;
        var y = h / 2 - (samples[g] + samples[g + 1]) * h / 4;
        ctx.rect(x, y, 1, 1);
      }
      ctx.stroke();
      return;
    }
    if (!samples.length) {
      ctx.moveTo(0, h / 2);
      ctx.lineTo(w, h / 2);
    }
    for (var i = 0; i < samples.length; i++) {
      var sx = samples.length > 1 ? i * w / (samples.length - 1) : 0;
      var sy = h / 2 - Math.max(-1, Math.min(1, samples[i])) * h / 2;
      if (i === 0) {
        ctx.moveTo(sx, sy);
      } else {
        ctx.lineTo(sx, sy);
      }
    }
    ctx.stroke();
  }

  function fpInitScopes() {
    var nodes = document.querySelectorAll('.scope-canvas');
    for (var i = 0; i < nodes.length; i++) {
      fpDrawScope(nodes[i].parentElement, []);
    }
  }

  global.fpPolar = fpPolar;
  global.fpArcPath = fpArcPath;
  global.fpFormatValue = fpFormatValue;
  global.fpRenderKnob = fpRenderKnob;
  global.fpRenderArc = fpRenderArc;
  global.fpRenderSlider = fpRenderSlider;
  global.fpRenderRange = fpRenderRange;
  global.fpRenderMeter = fpRenderMeter;
  global.fpRenderReadout = fpRenderReadout;
  global.fpDrawScope = fpDrawScope;

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', fpInitScopes);
  } else {
    fpInitScopes();
  }
})(window);
`

// GenerateComponentsJS renders components.js. The renderer is the same for
// every window.
func GenerateComponentsJS() string { return componentsJS }
