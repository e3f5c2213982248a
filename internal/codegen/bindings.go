package codegen

import (
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

// bindingsHead opens the scoped IIFE and defines the relay resolution and
// the per-family setup functions. Generated setup calls follow it.
const bindingsHead = `/* Generated by faceplate. Do not edit. */
(function (scopeName) {
  'use strict';

  var root = document;
  if (scopeName) {
    root = document.querySelector('[data-fp-window="' + scopeName + '"]') || document;
  }

  function byId(id) {
    return root.querySelector('[id="' + id + '"]');
  }

  function clamp01(v) {
    v = Number(v);
    if (isNaN(v)) {
      return 0;
    }
    return Math.max(0, Math.min(1, v));
  }

  function eventData(event) {
    if (!event) {
      return {};
    }
    return event.detail || (Array.isArray(event) ? event[0] : event) || {};
  }

  // juceRelay adapts the native function bridge. Results come back through
  // __juce__complete keyed by integer result ids.
  function juceRelay(juce) {
    var pending = new Map();
    var nextResultId = 1;
    var listeners = [];
    juce.backend.addEventListener('__juce__complete', function (event) {
      var data = eventData(event);
      var done = pending.get(data.resultId);
      if (done) {
        pending.delete(data.resultId);
        done(data.result);
      }
    });
    juce.backend.addEventListener('__juce__paramSync', function (event) {
      var params = eventData(event).params;
      if (!Array.isArray(params)) {
        return;
      }
      params.forEach(function (p) {
        listeners.forEach(function (fn) { fn(p.id, p.value); });
      });
    });
    function invoke(name, params) {
      return new Promise(function (resolve) {
        var resultId = nextResultId++;
        pending.set(resultId, resolve);
        juce.backend.emitEvent('__juce__invoke', { name: name, params: params, resultId: resultId });
        setTimeout(function () {
          if (pending.has(resultId)) {
            pending.delete(resultId);
            resolve(undefined);
          }
        }, 1000);
      });
    }
    return {
      getParameter: function (id) { return invoke('getParameter', [id]); },
      setParameter: function (id, value) { return invoke('setParameter', [id, value]); },
      beginGesture: function (id) { return invoke('beginGesture', [id]); },
      endGesture: function (id) { return invoke('endGesture', [id]); },
      addListener: function (fn) { listeners.push(fn); }
    };
  }

  function standaloneRelay() {
    var values = new Map();
    var listeners = [];
    return {
      getParameter: function (id) { return Promise.resolve(values.get(id)); },
      setParameter: function (id, value) {
        values.set(id, value);
        listeners.forEach(function (fn) { fn(id, value); });
        return Promise.resolve(true);
      },
      beginGesture: function () { return Promise.resolve(true); },
      endGesture: function () { return Promise.resolve(true); },
      addListener: function (fn) { listeners.push(fn); }
    };
  }

  // resolveRelay is shared by every window in the document.
  function resolveRelay() {
    if (window.__fpRelayReady) {
      return window.__fpRelayReady;
    }
    window.__fpRelayReady = new Promise(function (resolve) {
      var attempts = 0;
      (function poll() {
        if (window.__FACEPLATE_RELAY__) {
          resolve(window.__FACEPLATE_RELAY__);
          return;
        }
        var juce = window.__JUCE__;
        if (juce && juce.backend && juce.initialisationData) {
          var fns = juce.initialisationData.__juce__functions || [];
          if (fns.length > 0) {
            resolve(juceRelay(juce));
            return;
          }
        }
        if (++attempts >= 100) {
          console.warn('[faceplate] no host relay found; running standalone');
          resolve(standaloneRelay());
          return;
        }
        setTimeout(poll, 50);
      })();
    });
    return window.__fpRelayReady;
  }

  var updaters = {};
  var ready = resolveRelay().then(function (relay) {
    relay.addListener(function (id, value) {
      (updaters[id] || []).forEach(function (fn) { fn(value); });
    });
    return relay;
  });

  function send(method, id, value) {
    ready.then(function (relay) {
      var p = relay[method](id, value);
      if (p && p.catch) {
        p.catch(function () {});
      }
    });
  }

  // bind keeps one normalized host parameter and a render callback in sync.
  function bind(param, def, render) {
    var state = { value: clamp01(def) };
    render(state.value);
    (updaters[param] = updaters[param] || []).push(function (v) {
      state.value = clamp01(v);
      render(state.value);
    });
    ready.then(function (relay) {
      return relay.getParameter(param);
    }).then(function (v) {
      if (typeof v === 'number' && !isNaN(v)) {
        state.value = clamp01(v);
        render(state.value);
      }
    });
    return {
      state: state,
      set: function (v) {
        state.value = clamp01(v);
        render(state.value);
        send('setParameter', param, state.value);
      },
      begin: function () { send('beginGesture', param); },
      end: function () { send('endGesture', param); }
    };
  }

  function listen(param, render) {
    (updaters[param] = updaters[param] || []).push(render);
    ready.then(function (relay) {
      return relay.getParameter(param);
    }).then(function (v) {
      if (typeof v === 'number' && !isNaN(v)) {
        render(v);
      }
    });
  }

  // drag runs a pointer gesture on target; move returns the new value.
  function drag(target, binding, move) {
    target.addEventListener('pointerdown', function (e) {
      if (e.button !== 0) {
        return;
      }
      e.preventDefault();
      if (target.setPointerCapture) {
        target.setPointerCapture(e.pointerId);
      }
      var start = { x: e.clientX, y: e.clientY, value: binding.state.value };
      binding.begin();
      binding.set(move(e, start));
      function onMove(ev) {
        binding.set(move(ev, start));
      }
      function onUp() {
        target.removeEventListener('pointermove', onMove);
        target.removeEventListener('pointerup', onUp);
        target.removeEventListener('pointercancel', onUp);
        binding.end();
      }
      target.addEventListener('pointermove', onMove);
      target.addEventListener('pointerup', onUp);
      target.addEventListener('pointercancel', onUp);
    });
  }

  function snap(v, count) {
    if (count < 2) {
      return v;
    }
    return Math.round(v * (count - 1)) / (count - 1);
  }

  function indexOf(v, count) {
    return count < 2 ? 0 : Math.round(clamp01(v) * (count - 1));
  }

  function normIndex(i, count) {
    return count < 2 ? 0 : clamp01(i / (count - 1));
  }

  function trackRatio(track, e, vertical) {
    var r = track.getBoundingClientRect();
    if (vertical) {
      return r.height ? 1 - (e.clientY - r.top) / r.height : 0;
    }
    return r.width ? (e.clientX - r.left) / r.width : 0;
  }

  function setupRotary(el, param, def) {
    if (!el) {
      return;
    }
    var steps = el.querySelectorAll('.knob-step').length;
    var detent = el.dataset.type === 'centerdetentknob';
    var b = bind(param, def, function (v) { fpRenderKnob(el, v); });
    drag(el, b, function (e, start) {
      var v = clamp01(start.value + (start.y - e.clientY) / 200);
      if (detent && Math.abs(v - 0.5) < 0.03) {
        v = 0.5;
      }
      return snap(v, steps);
    });
    el.addEventListener('dblclick', function () { b.set(def); });
  }

  function setupLinear(el, param, def) {
    if (!el) {
      return;
    }
    var track = el.querySelector('.slider-track') || el;
    var vertical = el.classList.contains('vertical');
    var notches = parseInt(el.dataset.notches, 10) || 0;
    var b = bind(param, def, function (v) { fpRenderSlider(el, v); });
    drag(track, b, function (e) { return snap(clamp01(trackRatio(track, e, vertical)), notches); });
    el.addEventListener('dblclick', function () { b.set(def); });
  }

  function setupArc(el, param, def) {
    if (!el) {
      return;
    }
    var start = parseFloat(getComputedStyle(el).getPropertyValue('--fp-start-angle')) || -135;
    var end = parseFloat(getComputedStyle(el).getPropertyValue('--fp-end-angle')) || 135;
    var b = bind(param, def, function (v) { fpRenderArc(el, v); });
    drag(el, b, function (e) {
      var r = el.getBoundingClientRect();
      var deg = Math.atan2(e.clientX - (r.left + r.width / 2), (r.top + r.height / 2) - e.clientY) * 180 / Math.PI;
      return end === start ? 0 : clamp01((deg - start) / (end - start));
    });
  }

  function setupRange(el, param, lo, hi) {
    if (!el) {
      return;
    }
    var track = el.querySelector('.range-track') || el;
    var vertical = el.classList.contains('vertical');
    var low, high;
    low = bind(param + '_min', lo, function (v) { fpRenderRange(el, v, high ? high.state.value : hi); });
    high = bind(param + '_max', hi, function (v) { fpRenderRange(el, low.state.value, v); });
    track.addEventListener('pointerdown', function (e) {
      var at = clamp01(trackRatio(track, e, vertical));
      var which = Math.abs(at - low.state.value) <= Math.abs(at - high.state.value) ? low : high;
      var bound = which === low ? function (v) { return Math.min(v, high.state.value); }
        : function (v) { return Math.max(v, low.state.value); };
      e.preventDefault();
      if (track.setPointerCapture) {
        track.setPointerCapture(e.pointerId);
      }
      which.begin();
      which.set(bound(at));
      function onMove(ev) {
        which.set(bound(clamp01(trackRatio(track, ev, vertical))));
      }
      function onUp() {
        track.removeEventListener('pointermove', onMove);
        track.removeEventListener('pointerup', onUp);
        which.end();
      }
      track.addEventListener('pointermove', onMove);
      track.addEventListener('pointerup', onUp);
    });
  }

  function setupMultiSlider(el, param) {
    if (!el) {
      return;
    }
    el.querySelectorAll('.multi-band').forEach(function (band, i) {
      var fill = band.querySelector('.multi-band-fill');
      var def = fill ? clamp01(parseFloat(fill.style.height) / 100) : 0.5;
      var b = bind(param + '_band' + i, def, function (v) {
        if (fill) {
          fill.style.height = (v * 100) + '%';
        }
      });
      drag(band, b, function (e) { return clamp01(trackRatio(band, e, true)); });
    });
  }

  function setupButton(el, param, def) {
    if (!el) {
      return;
    }
    var toggle = el.dataset.mode === 'toggle';
    var b = bind(param, def, function (v) { el.classList.toggle('pressed', v > 0.5); });
    var target = el.querySelector('.fp-button') || el;
    target.addEventListener('pointerdown', function () {
      b.begin();
      b.set(toggle ? (b.state.value > 0.5 ? 0 : 1) : 1);
    });
    target.addEventListener('pointerup', function () {
      if (!toggle) {
        b.set(0);
      }
      b.end();
    });
  }

  function setupSwitch(el, param, def) {
    if (!el) {
      return;
    }
    var b = bind(param, def, function (v) {
      var on = v > 0.5;
      el.classList.toggle('on', on);
      el.dataset.on = String(on);
    });
    el.addEventListener('click', function () {
      b.begin();
      b.set(b.state.value > 0.5 ? 0 : 1);
      b.end();
    });
  }

  function setupRocker(el, param, def) {
    if (!el) {
      return;
    }
    var names = ['down', 'center', 'up'];
    var springReturn = el.dataset.mode === 'spring-to-center';
    var b = bind(param, def, function (v) { el.dataset.position = names[indexOf(v, 3)]; });
    el.addEventListener('pointerdown', function (e) {
      var r = el.getBoundingClientRect();
      b.begin();
      b.set(e.clientY < r.top + r.height / 2 ? 1 : 0);
    });
    el.addEventListener('pointerup', function () {
      if (springReturn) {
        b.set(0.5);
      }
      b.end();
    });
  }

  function setupRotarySwitch(el, param, def) {
    if (!el) {
      return;
    }
    var count = parseInt(el.dataset.count, 10) || 2;
    var sweep = parseFloat(el.dataset.sweep) || 270;
    var pointer = el.querySelector('.rotary-pointer');
    var b = bind(param, def, function (v) {
      var i = indexOf(v, count);
      el.dataset.selected = String(i);
      if (pointer) {
        pointer.style.transform = 'rotate(' + (-sweep / 2 + normIndex(i, count) * sweep) + 'deg)';
      }
    });
    el.addEventListener('click', function () {
      b.set(normIndex((indexOf(b.state.value, count) + 1) % count, count));
    });
  }

  function setupSegmented(el, param, def) {
    if (!el) {
      return;
    }
    var items = el.querySelectorAll('[data-index]');
    var count = items.length;
    var b = bind(param, def, function (v) {
      var sel = indexOf(v, count);
      el.dataset.selected = String(sel);
      items.forEach(function (item, i) { item.classList.toggle('active', i === sel); });
    });
    items.forEach(function (item, i) {
      item.addEventListener('click', function () { b.set(normIndex(i, count)); });
    });
  }

  function setupChoice(el, param, def) {
    if (!el) {
      return;
    }
    var select = el.querySelector('select');
    if (select && select.multiple) {
      Array.prototype.forEach.call(select.options, function (opt, i) {
        var b = bind(param + '_' + i, opt.selected ? 1 : 0, function (v) { opt.selected = v > 0.5; });
        select.addEventListener('change', function () {
          if ((b.state.value > 0.5) !== opt.selected) {
            b.set(opt.selected ? 1 : 0);
          }
        });
      });
      return;
    }
    var count = parseInt(el.dataset.count, 10) || 0;
    if (select) {
      var b = bind(param, def, function (v) { select.value = String(indexOf(v, count)); });
      select.addEventListener('change', function () { b.set(normIndex(parseInt(select.value, 10) || 0, count)); });
      return;
    }
    var input = el.querySelector('input');
    var options = Array.prototype.map.call(el.querySelectorAll('option'), function (o) { return o.value; });
    var c = bind(param, def, function (v) {
      if (input && document.activeElement !== input && options.length) {
        input.value = options[indexOf(v, options.length)];
      }
    });
    if (input) {
      input.addEventListener('change', function () {
        var i = options.indexOf(input.value);
        if (i >= 0) {
          c.set(normIndex(i, options.length));
        }
      });
    }
  }

  function setupCheckbox(el, param, def) {
    if (!el) {
      return;
    }
    var input = el.querySelector('input[type="checkbox"]');
    var b = bind(param, def, function (v) {
      if (input) {
        input.checked = v > 0.5;
      }
    });
    if (input) {
      input.addEventListener('change', function () { b.set(input.checked ? 1 : 0); });
    }
  }

  function setupRadio(el, param, def) {
    if (!el) {
      return;
    }
    var inputs = el.querySelectorAll('input[type="radio"]');
    var count = inputs.length;
    var b = bind(param, def, function (v) {
      var sel = indexOf(v, count);
      inputs.forEach(function (input, i) { input.checked = i === sel; });
    });
    inputs.forEach(function (input, i) {
      input.addEventListener('change', function () {
        if (input.checked) {
          b.set(normIndex(i, count));
        }
      });
    });
  }

  function setupStepper(el, param, def) {
    if (!el) {
      return;
    }
    var min = parseFloat(el.dataset.min) || 0;
    var max = parseFloat(el.dataset.max);
    if (isNaN(max)) {
      max = 1;
    }
    var step = parseFloat(el.dataset.step) || 1;
    var decimals = parseInt(el.dataset.decimals, 10) || 0;
    var span = max - min || 1;
    var out = el.querySelector('.stepper-value');
    var b = bind(param, def, function (v) {
      if (out) {
        out.textContent = (min + v * span).toFixed(decimals);
      }
    });
    function nudge(dir) {
      var raw = Math.max(min, Math.min(max, min + b.state.value * span + dir * step));
      b.set((raw - min) / span);
    }
    var dec = el.querySelector('.stepper-dec');
    var inc = el.querySelector('.stepper-inc');
    if (dec) {
      dec.addEventListener('click', function () { nudge(-1); });
    }
    if (inc) {
      inc.addEventListener('click', function () { nudge(1); });
    }
  }

  function setupXY(el, param, def, yParam, yDef) {
    if (!el) {
      return;
    }
    var dot = el.querySelector('.xy-dot');
    var x = bind(param, def, function (v) {
      if (dot) {
        dot.style.left = (v * 100) + '%';
      }
    });
    var y = bind(yParam, yDef, function (v) {
      if (dot) {
        dot.style.top = ((1 - v) * 100) + '%';
      }
    });
    el.addEventListener('pointerdown', function (e) {
      e.preventDefault();
      if (el.setPointerCapture) {
        el.setPointerCapture(e.pointerId);
      }
      x.begin();
      y.begin();
      function onMove(ev) {
        x.set(trackRatio(el, ev, false));
        y.set(trackRatio(el, ev, true));
      }
      function onUp() {
        el.removeEventListener('pointermove', onMove);
        el.removeEventListener('pointerup', onUp);
        x.end();
        y.end();
      }
      onMove(e);
      el.addEventListener('pointermove', onMove);
      el.addEventListener('pointerup', onUp);
    });
  }

  function setupPad(el, param) {
    if (!el) {
      return;
    }
    var b = bind(param, 0, function (v) { el.classList.toggle('active', v > 0.5); });
    el.addEventListener('pointerdown', function () {
      b.begin();
      b.set(1);
    });
    el.addEventListener('pointerup', function () {
      b.set(0);
      b.end();
    });
  }

  function setupSequencer(el, param) {
    if (!el) {
      return;
    }
    el.querySelectorAll('.seq-step').forEach(function (step, i) {
      var b = bind(param + '_step' + i, step.classList.contains('active') ? 1 : 0, function (v) {
        step.classList.toggle('active', v > 0.5);
      });
      step.addEventListener('click', function () { b.set(b.state.value > 0.5 ? 0 : 1); });
    });
  }

  function setupLoop(el, param, lo, hi) {
    if (!el) {
      return;
    }
    var region = el.querySelector('.loop-region');
    var ms = el.querySelector('.loop-start');
    var me = el.querySelector('.loop-end');
    var start, end;
    function render() {
      var a = start ? start.state.value : lo;
      var z = end ? end.state.value : hi;
      if (region) {
        region.style.left = (a * 100) + '%';
        region.style.width = (Math.max(z - a, 0) * 100) + '%';
      }
      if (ms) {
        ms.style.left = (a * 100) + '%';
      }
      if (me) {
        me.style.left = (z * 100) + '%';
      }
    }
    start = bind(param + '_start', lo, render);
    end = bind(param + '_end', hi, render);
    if (ms) {
      drag(ms, start, function (e) { return Math.min(clamp01(trackRatio(el, e, false)), end.state.value); });
    }
    if (me) {
      drag(me, end, function (e) { return Math.max(clamp01(trackRatio(el, e, false)), start.state.value); });
    }
  }

  function setupMeter(el, param) {
    if (el) {
      listen(param, function (v) { fpRenderMeter(el, v); });
    }
  }

  function setupReadout(el, param, format, suffix) {
    if (el) {
      listen(param, function (v) { fpRenderReadout(el, v, format, suffix); });
    }
  }

  function setupCollapsible(el) {
    var header = el && el.querySelector('.collapsible-header');
    if (header) {
      header.addEventListener('click', function () { el.classList.toggle('collapsed'); });
    }
  }

  function setupMenu(el) {
    if (!el) {
      return;
    }
    var trigger = el.querySelector('.menu-trigger');
    if (trigger) {
      trigger.addEventListener('click', function () { el.classList.toggle('open'); });
    }
    el.querySelectorAll('.menu-item').forEach(function (item) {
      item.addEventListener('click', function () {
        el.classList.remove('open');
        el.dispatchEvent(new CustomEvent('faceplate:select', { bubbles: true, detail: { index: Number(item.dataset.index) } }));
      });
    });
  }

  // setupList handles single-selection lists. A bound list also pushes the
  // normalized selection to the host.
  function setupList(el, param) {
    if (!el) {
      return;
    }
    var items = el.querySelectorAll('[data-index]');
    var count = items.length;
    var b = null;
    function mark(sel) {
      items.forEach(function (item, i) { item.classList.toggle('active', i === sel); });
    }
    if (param) {
      var current = Array.prototype.findIndex.call(items, function (item) { return item.classList.contains('active'); });
      b = bind(param, normIndex(Math.max(current, 0), count), function (v) { mark(indexOf(v, count)); });
    }
    items.forEach(function (item, i) {
      item.addEventListener('click', function () {
        if (b) {
          b.set(normIndex(i, count));
        } else {
          mark(i);
        }
        el.dispatchEvent(new CustomEvent('faceplate:select', { bubbles: true, detail: { index: i } }));
      });
    });
  }

  // setupToggleCells gives local feedback only. Matrix cells latch; keys
  // light while held.
  function setupToggleCells(el, selector) {
    if (!el) {
      return;
    }
    var latch = selector === '.mod-cell';
    el.querySelectorAll(selector).forEach(function (cell) {
      if (latch) {
        cell.addEventListener('click', function () { cell.classList.toggle('active'); });
        return;
      }
      cell.addEventListener('pointerdown', function () { cell.classList.add('active'); });
      cell.addEventListener('pointerup', function () { cell.classList.remove('active'); });
      cell.addEventListener('pointerleave', function () { cell.classList.remove('active'); });
    });
  }

  // setupWindowLink asks the host, or the preview navigator, to show target.
  function setupWindowLink(el, target) {
    if (!el) {
      return;
    }
    el.addEventListener('click', function () {
      el.dispatchEvent(new CustomEvent('faceplate:navigate', { bubbles: true, detail: { window: target } }));
      ready.then(function (relay) {
        if (typeof relay.openWindow === 'function') {
          relay.openWindow(target);
        }
      });
    });
  }

`

const bindingsTail = `})(document.currentScript && document.currentScript.dataset.scope);
`

// setupCall is one generated line of bindings.js. The element handle is
// always the first argument.
type setupCall struct {
	fn   string
	args []string
}

func (c setupCall) line(el model.Element) string {
	args := append([]string{"byId(" + jsString(model.NormalizeName(el.Base().Name)) + ")"}, c.args...)
	return "  " + c.fn + "(" + strings.Join(args, ", ") + ");\n"
}

func jsNum(f float64) string { return num(f) }

// GenerateBindingsJS renders bindings.js for one window. Elements are wired
// in layer order so the output is stable for a given input.
func GenerateBindingsJS(elements []model.Element, opts Options) string {
	var b strings.Builder
	b.WriteString(bindingsHead)
	for _, el := range opts.Layers.Sort(elements) {
		if call, ok := bindingCall(el); ok {
			b.WriteString(call.line(el))
		}
	}
	b.WriteString(bindingsTail)
	return b.String()
}

// bindingCall dispatches on the concrete element type. Every type in the
// element union must have a case; the bool is false for elements with no
// runtime behavior.
func bindingCall(el model.Element) (setupCall, bool) {
	param := boundParam(el)
	p := jsString(param)
	call := func(fn string, args ...string) (setupCall, bool) { return setupCall{fn, args}, true }
	bit := func(on bool) string {
		if on {
			return "1"
		}
		return "0"
	}

	switch e := el.(type) {
	case *model.Knob, *model.SteppedKnob, *model.CenterDetentKnob, *model.DotIndicatorKnob:
		return call("setupRotary", p, jsNum(el.(model.Rotary).Rotary().Normalized()))
	case *model.Slider, *model.BipolarSlider, *model.NotchedSlider, *model.CrossfadeSlider:
		return call("setupLinear", p, jsNum(el.(model.Linear).Linear().Normalized()))
	case *model.ArcSlider:
		return call("setupArc", p, jsNum(e.Normalized()))
	case *model.RangeSlider:
		lo, hi := e.Bounds()
		return call("setupRange", p, jsNum(lo), jsNum(hi))
	case *model.MultiSlider:
		return call("setupMultiSlider", p)
	case *model.Button:
		return call("setupButton", p, bit(e.Pressed))
	case *model.IconButton:
		return call("setupButton", p, bit(e.Pressed))
	case *model.ToggleSwitch:
		return call("setupSwitch", p, bit(e.IsOn))
	case *model.PowerButton:
		return call("setupSwitch", p, bit(e.IsOn))
	case *model.RockerSwitch:
		pos := e.Position
		if pos < 0 || pos > 2 {
			pos = 0
		}
		return call("setupRocker", p, jsNum(ratio(pos, 3)))
	case *model.RotarySwitch:
		n := max(e.PositionCount, 2)
		return call("setupRotarySwitch", p, jsNum(ratio(e.CurrentPosition, n)))
	case *model.SegmentButton:
		return call("setupSegmented", p, jsNum(ratio(e.SelectedIndex, len(e.Segments))))
	case *model.TabBar:
		return call("setupSegmented", p, jsNum(ratio(e.ActiveTab, len(e.Tabs))))
	case *model.Dropdown:
		return call("setupChoice", p, jsNum(ratio(e.SelectedIndex, len(e.Options))))
	case *model.MultiSelectDropdown:
		return call("setupChoice", p, "0")
	case *model.ComboBox:
		sel := 0
		for i, o := range e.Options {
			if o == e.Text {
				sel = i
				break
			}
		}
		return call("setupChoice", p, jsNum(ratio(sel, len(e.Options))))
	case *model.Checkbox:
		return call("setupCheckbox", p, bit(e.Checked))
	case *model.RadioGroup:
		return call("setupRadio", p, jsNum(ratio(e.SelectedIndex, len(e.Options))))
	case *model.Stepper:
		return call("setupStepper", p, jsNum(e.Normalized()))
	case *model.XYPad:
		y := strings.TrimSpace(e.YParameterID)
		if y == "" {
			y = param + "_y"
		}
		return call("setupXY", p, jsNum(clamp01(e.XValue)), jsString(y), jsNum(clamp01(e.YValue)))
	case *model.DrumPad:
		return call("setupPad", p)
	case *model.StepSequencer:
		return call("setupSequencer", p)
	case *model.LoopPoints:
		lo, hi := e.Start, e.End
		if lo > hi {
			lo, hi = hi, lo
		}
		return call("setupLoop", p, jsNum(clamp01(lo)), jsNum(clamp01(hi)))

	case *model.Meter, *model.GainReductionMeter:
		if param == "" {
			return setupCall{}, false
		}
		return call("setupMeter", p)
	case *model.DBDisplay:
		if param == "" {
			return setupCall{}, false
		}
		return call("setupReadout", p, jsString("custom"), jsString(" "+e.Unit))
	case *model.FrequencyDisplay:
		if param == "" {
			return setupCall{}, false
		}
		if e.Unit != "" && e.Unit != "Hz" {
			return call("setupReadout", p, jsString("custom"), jsString(" "+e.Unit))
		}
		return call("setupReadout", p, jsString("hz"), jsString(""))

	case *model.Collapsible:
		return setupCall{fn: "setupCollapsible"}, true
	case *model.MenuButton:
		return setupCall{fn: "setupMenu"}, true
	case *model.TreeView, *model.PresetBrowser, *model.Breadcrumb:
		return call("setupList", p)
	case *model.WindowLink:
		return call("setupWindowLink", jsString(e.TargetWindowID))
	case *model.ModulationMatrix:
		return call("setupToggleCells", jsString(".mod-cell"))
	case *model.PianoKeyboard:
		return call("setupToggleCells", jsString(".piano-key"))

	case *model.TextField, *model.Label,
		*model.Waveform, *model.Oscilloscope, *model.Goniometer, *model.SpectrumAnalyzer,
		*model.EQCurve, *model.CompressorCurve, *model.EnvelopeDisplay, *model.LFODisplay, *model.FilterResponse,
		*model.Panel, *model.Frame, *model.GroupBox,
		*model.Image, *model.SVGGraphic, *model.Rectangle, *model.Line:
		return setupCall{}, false
	default:
		unhandled("bindings", el)
	}
	return setupCall{}, false
}

// BindingCount reports how many elements get a setup call.
func BindingCount(elements []model.Element) int {
	n := 0
	for _, el := range elements {
		if _, ok := bindingCall(el); ok {
			n++
		}
	}
	return n
}
