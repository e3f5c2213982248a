package codegen

const mockRelayJS = `/* Generated by faceplate. Standalone preview relay; do not ship to a host. */
(function () {
  'use strict';
  if (window.__FACEPLATE_RELAY__) {
    return;
  }
  var values = new Map();
  var listeners = [];

  function notify(id, value) {
    listeners.slice().forEach(function (fn) {
      try {
        fn(id, value);
      } catch (err) {
        console.error('[faceplate relay] listener failed', err);
      }
    });
  }

  window.__FACEPLATE_RELAY__ = {
    getParameter: function (id) {
      return Promise.resolve(values.has(id) ? values.get(id) : undefined);
    },
    setParameter: function (id, value) {
      values.set(id, value);
      console.debug('[faceplate relay] set', id, value);
      setTimeout(function () { notify(id, value); }, 0);
      return Promise.resolve(true);
    },
    beginGesture: function (id) {
      console.debug('[faceplate relay] begin', id);
      return Promise.resolve(true);
    },
    endGesture: function (id) {
      console.debug('[faceplate relay] end', id);
      return Promise.resolve(true);
    },
    addListener: function (fn) {
      listeners.push(fn);
      return function () {
        var i = listeners.indexOf(fn);
        if (i >= 0) {
          listeners.splice(i, 1);
        }
      };
    },
    // snapshot lists every parameter set so far; handy from the console.
    snapshot: function () {
      var out = {};
      values.forEach(function (v, k) { out[k] = v; });
      return out;
    }
  };
})();
`

// GenerateMockRelayJS renders mock-relay.js, an in-memory implementation
// of the host relay for standalone previews.
func GenerateMockRelayJS() string { return mockRelayJS }
